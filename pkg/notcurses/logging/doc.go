// Package logging provides a minimal logging facade for the notcurses
// wrapper's tools and examples.
//
// The library itself never logs: once notcurses owns the terminal, writing
// to stdout would corrupt the rendered output, and diagnostics are the
// domain of the native library's own loglevel. This facade exists for the
// code around the library (commands, examples, applications) and its
// default implementation writes to stderr for that reason.
//
// The Logger interface wraps a subset of log/slog so applications can
// substitute their own implementation:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
package logging
