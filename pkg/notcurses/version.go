package notcurses

import "github.com/bdchik/notcurses-go/internal/bindings"

var (
	// WrapperVersionString is populated at build time via ldflags.
	WrapperVersionString = "v0.0.0-dev"
)

// WrapperVersion returns the semantic version of these bindings.
func WrapperVersion() string {
	return WrapperVersionString
}

// LibraryVersion returns the version string reported by the linked
// notcurses library, or "" when the native bindings are not built.
func LibraryVersion() string {
	return bindings.Version()
}

// LibraryVersionComponents returns the linked notcurses version as
// major, minor, patch, tweak.
func LibraryVersionComponents() (major, minor, patch, tweak int) {
	return bindings.VersionComponents()
}
