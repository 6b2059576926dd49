// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package expect

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"go.astrophena.name/expect/logger"
	"go.astrophena.name/expect/syncx"
)

// Reporter is called with every failure before the panic starts.
type Reporter func(*Failure)

var reporter atomic.Pointer[Reporter]

func init() {
	r := Reporter(reportStderr)
	reporter.Store(&r)
}

// SetReporter makes r the reporter for all subsequent failures and returns a
// function that restores the previous one. A nil r disables reporting.
func SetReporter(r Reporter) (restore func()) {
	prev := reporter.Swap(&r)
	return func() { reporter.Store(prev) }
}

// LogReporter returns a Reporter that logs failures to l at error level.
func LogReporter(l *logger.Logger) Reporter {
	return func(f *Failure) {
		l.LogAttrs(context.Background(), slog.LevelError, f.Error(),
			slog.String("func", f.Location.Func),
			slog.String("file", f.Location.File),
			slog.Int("line", f.Location.Line),
			slog.String("cause", fmt.Sprint(f.Cause)),
		)
	}
}

var stderrLogger syncx.Lazy[*logger.Logger]

func reportStderr(f *Failure) {
	l := stderrLogger.Get(func() *logger.Logger {
		return logger.NewTerminal(os.Stderr, nil)
	})
	LogReporter(l)(f)
}

func report(f *Failure) {
	if r := reporter.Load(); r != nil && *r != nil {
		(*r)(f)
	}
}
