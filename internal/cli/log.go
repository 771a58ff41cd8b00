// Package cli implements the fretboard command-line interface.
//
// # Commands
//
// The main commands are:
//   - chart: Draw the fretboard chart for a tuning
//   - analyze: Print the interval summary for a tuning
//   - scales: List the scale and chord masks
//   - seek: Search for gap sequences that cover a set of intervals
//   - site: Build an HTML or Markdown page of charts for a tuning list
//   - browse: Page through a tuning list interactively
//   - cache: Manage the local chart cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs pipeline, cache and site events. Loggers are passed through
// context.Context. Logs go to stderr; charts go to stdout.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, with timestamps like
// "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a command took, e.g.
// "Found 4 candidates (812ms)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey struct{}

// withLogger attaches l to ctx for the command's RunE.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the attached logger, or log.Default() when a
// command runs without the root hook (as in tests of single commands).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
