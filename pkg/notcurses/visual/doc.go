// Package visual wraps ncvisual: decoded media (images, frames, raw RGBA)
// that can be blitted onto planes. A Visual owns its foreign object and
// must be released with Destroy; a finalizer backstops leaks.
//
// Blitting is configured through Options, usually via the Builder:
//
//	opts := visual.NewOptionsBuilder().
//		Parent(std).
//		Scale(notcurses.ScaleScale).
//		Blend(true).
//		Build()
//	plane, err := v.Render(nc, opts)
//
// The builder keeps the option flags coherent: placing by coordinate clears
// the alignment flags, placing by alignment sets them, choosing a
// transparent color sets the add-alpha flag, and so on.
package visual
