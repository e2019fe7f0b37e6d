// Package obslog is the structured logging sink used by cmd/swiftmtctl,
// grounded in part5.NewLogger/part5.Monitor's constructor-injected adapter:
// one sink built once by its caller, never a package-global logger. The
// dictionary and htcache packages do not log.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// A Logger records one structured event at a time. Parse, fetch and
// ingest failures are reported through it rather than returned bare to
// stderr, so a caller embedding this module can redirect or enrich them.
type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, err error, fields map[string]any)
}

type logger struct {
	zl zerolog.Logger
}

// New returns a Logger that writes newline-delimited JSON to w. Passing
// os.Stderr matches cmd/swiftmtctl's default; tests pass an
// io.Discard or a bytes.Buffer instead.
func New(w io.Writer) Logger {
	return logger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// Default is a convenience constructor for New(os.Stderr).
func Default() Logger {
	return New(os.Stderr)
}

func (l logger) Info(msg string, fields map[string]any) {
	ev := l.zl.Info()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l logger) Error(msg string, err error, fields map[string]any) {
	ev := l.zl.Error().Err(err)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
