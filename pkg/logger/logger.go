package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// LevelCritical sits above slog.LevelError and is rendered as CRITICAL.
const LevelCritical = slog.Level(12)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
	Critical(message string, args ...any)
	// BusinessError records an expected failure (bad input, missing row) at warn.
	BusinessError(message string, err error, args ...any)
	// InternalError records an unexpected failure at error.
	InternalError(message string, err error, args ...any)
	With(args ...any) Logger
}

// Options configures a Logger. A nil Output means stdout; any format other
// than FormatText produces JSON.
type Options struct {
	Output io.Writer
	Level  slog.Level
	Format string
}

// OptionsFromEnv reads ENV, LOG_LEVEL and LOG_FORMAT. Development defaults to debug.
func OptionsFromEnv(getenv func(string) string) Options {
	development := normalize(getenv("ENV")) == "development"
	return Options{
		Output: os.Stdout,
		Level:  ParseLevel(getenv("LOG_LEVEL"), development),
		Format: normalize(getenv("LOG_FORMAT")),
	}
}

func NewFromEnv() Logger {
	return NewWithOptions(OptionsFromEnv(os.Getenv))
}

func New(output io.Writer, level slog.Level, format string) Logger {
	return NewWithOptions(Options{Output: output, Level: level, Format: format})
}

func NewWithOptions(opts Options) Logger {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level, ReplaceAttr: renameCritical}

	var handler slog.Handler
	if normalize(opts.Format) == FormatText {
		handler = slog.NewTextHandler(output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(output, handlerOpts)
	}
	return &slogLogger{base: slog.New(handler)}
}

// Nop discards everything.
func Nop() Logger {
	return NewWithOptions(Options{Output: io.Discard, Level: LevelCritical + 1})
}

// StdLog adapts l for APIs that take a *log.Logger, such as http.Server.ErrorLog.
func StdLog(l Logger, level slog.Level) *log.Logger {
	if sl, ok := l.(*slogLogger); ok {
		return slog.NewLogLogger(sl.base.Handler(), level)
	}
	return log.New(io.Discard, "", 0)
}

// ParseLevel maps a LOG_LEVEL value. Empty or unknown values fall back to
// debug when verbose is set and info otherwise.
func ParseLevel(value string, verbose bool) slog.Level {
	switch normalize(value) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical", "fatal":
		return LevelCritical
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

type slogLogger struct {
	base *slog.Logger
}

func (l *slogLogger) log(level slog.Level, message string, args []any) {
	l.base.Log(context.Background(), level, message, args...)
}

func (l *slogLogger) Debug(message string, args ...any)    { l.log(slog.LevelDebug, message, args) }
func (l *slogLogger) Info(message string, args ...any)     { l.log(slog.LevelInfo, message, args) }
func (l *slogLogger) Warn(message string, args ...any)     { l.log(slog.LevelWarn, message, args) }
func (l *slogLogger) Error(message string, args ...any)    { l.log(slog.LevelError, message, args) }
func (l *slogLogger) Critical(message string, args ...any) { l.log(LevelCritical, message, args) }

func (l *slogLogger) BusinessError(message string, err error, args ...any) {
	if err != nil {
		l.log(slog.LevelWarn, message, withError("business", err, args))
	}
}

func (l *slogLogger) InternalError(message string, err error, args ...any) {
	if err != nil {
		l.log(slog.LevelError, message, withError("internal", err, args))
	}
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{base: l.base.With(args...)}
}

func withError(kind string, err error, args []any) []any {
	attrs := make([]any, 0, len(args)+4)
	attrs = append(attrs, "err", err, "error_kind", kind)
	return append(attrs, args...)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func renameCritical(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelCritical {
			attr.Value = slog.StringValue("CRITICAL")
		}
	}
	return attr
}
