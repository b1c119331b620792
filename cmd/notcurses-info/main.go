// Command notcurses-info reports the wrapper and library versions along
// with the capabilities of the attached terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/bdchik/notcurses-go/pkg/notcurses"
	"github.com/bdchik/notcurses-go/pkg/notcurses/logging"
)

func main() {
	log := logging.Stderr(slog.LevelInfo)
	ctx := context.Background()

	fmt.Printf("notcurses-go version: %s\n", notcurses.WrapperVersion())
	if v := notcurses.LibraryVersion(); v != "" {
		fmt.Printf("notcurses library:    %s\n", v)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Info(ctx, "stdout is not a terminal, skipping capability probe")
		return
	}

	opts := &notcurses.Options{
		LogLevel: notcurses.LogSilent,
		Flags:    notcurses.OptionSuppressBanners | notcurses.OptionNoAlternateScreen,
	}
	nc, err := notcurses.New(opts)
	if err != nil {
		if errors.Is(err, notcurses.ErrNotBuilt) || errors.Is(err, notcurses.ErrCGONotEnabled) {
			log.Info(ctx, "native library unavailable", "err", err)
			return
		}
		log.Error(ctx, "notcurses init failed", "err", err)
		os.Exit(1)
	}

	type cap struct {
		name string
		have bool
	}
	caps := []cap{
		{"truecolor", nc.CanTrueColor()},
		{"utf8", nc.CanUTF8()},
		{"fade", nc.CanFade()},
		{"changecolor", nc.CanChangeColor()},
		{"images", nc.CanOpenImages()},
		{"videos", nc.CanOpenVideos()},
		{"sixel", nc.CanSixel()},
	}
	palette := nc.PaletteSize()
	styles := nc.SupportedStyles()
	rows, cols, _ := nc.TermDimYX()

	if err := nc.Close(); err != nil {
		log.Error(ctx, "notcurses stop failed", "err", err)
		os.Exit(1)
	}

	// Report only after the terminal has been restored.
	fmt.Printf("terminal: %d rows x %d cols, %d-color palette\n", rows, cols, palette)
	fmt.Printf("styles:   %s\n", styles)
	for _, c := range caps {
		fmt.Printf("  %-12s %v\n", c.name, c.have)
	}
}
