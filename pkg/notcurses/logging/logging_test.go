package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := New(slog.New(h))

	ctx := context.Background()
	log.Debug(ctx, "render", "frames", 3)
	log.Info(ctx, "input", "key", "q")

	out := buf.String()
	for _, want := range []string{"render", "frames=3", "input", "key=q"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, nil)
	log := New(slog.New(h)).With("plane", "std")

	log.Info(context.Background(), "erase")
	if !strings.Contains(buf.String(), "plane=std") {
		t.Errorf("output missing bound attribute:\n%s", buf.String())
	}
}

func TestNewNilFallsBackToDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}
