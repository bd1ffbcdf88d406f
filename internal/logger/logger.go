package logger

import (
	"log/slog"
	"os"

	slogotel "github.com/remychantenay/slog-otel"
)

var LogLevel = new(slog.LevelVar)

// Structured logs go to stderr: stdout belongs to workflow commands and
// audit lines, and the runner log viewer renders both streams.
var jsonHandler = slog.NewJSONHandler(
	os.Stderr,
	&slog.HandlerOptions{Level: LogLevel},
)
var sloghandler = slogotel.NewOtelHandler(slogotel.WithNoTraceEvents(true))
var Handler = sloghandler(jsonHandler)
var Logger = slog.New(Handler)

func InitSlog() {
	slog.SetDefault(Logger)
	LogLevel.Set(slog.LevelInfo)
}

// WithInvocation binds the invocation ID so every line of a run can be
// correlated with its audit events.
func WithInvocation(id string) *slog.Logger {
	return Logger.With("invocation_id", id)
}
