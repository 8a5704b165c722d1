package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat renders timestamps as "15:04:05.00".
const logTimeFormat = "15:04:05.00"

// newLogger returns the command logger. Diagnostics go to w (stderr in
// production) so chart bytes written to stdout stay clean.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// stage times one pipeline stage of a command and logs its completion with
// the elapsed time as a structured field.
type stage struct {
	logger *log.Logger
	name   string
	start  time.Time
}

func startStage(l *log.Logger, name string) *stage {
	l.Debug("stage started", "stage", name)
	return &stage{logger: l, name: name, start: time.Now()}
}

// done logs the stage as finished. keyvals are appended after the stage
// name and elapsed time.
func (s *stage) done(keyvals ...any) {
	fields := append([]any{"stage", s.name, "elapsed", s.elapsed()}, keyvals...)
	s.logger.Info("stage finished", fields...)
}

func (s *stage) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger installed by the root command, or
// log.Default() when a subcommand runs without one (as in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
