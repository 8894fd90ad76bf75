package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// AttrOption adds a field to a logger context.
type AttrOption func(l zerolog.Context) zerolog.Context

// Scope tags log lines with the component that produced them.
func Scope(s string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

// Op tags log lines with the operation in progress.
func Op(op string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

// Kind tags log lines with the list variant ("single", "double", "records").
func Kind(kind string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("kind", kind)
	}
}

// Path tags log lines with a document path.
func Path(path string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("path", path)
	}
}

// Logger is a thin wrapper around [zerolog.Logger] with printf-style helpers.
type Logger struct {
	zl *zerolog.Logger
}

// InitGlobals builds the process logger and installs it as the fallback for
// contexts without one. Log output goes to stderr.
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	l := newLogger(os.Stderr, level, json, noColor)
	zerolog.DefaultContextLogger = l

	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	return l
}

func newLogger(out io.Writer, level zerolog.Level, json, noColor bool) *zerolog.Logger {
	w := out
	if !json {
		w = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.NoColor = noColor
			w.TimeFormat = time.DateTime
		})
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &l
}

// New returns the fallback logger tagged with scope.
func New(scope string) *Logger {
	return Ctx(context.Background()).With(Scope(scope))
}

// Ctx returns the logger stored in ctx, or the fallback logger.
func Ctx(ctx context.Context) *Logger {
	return &Logger{zl: zerolog.Ctx(ctx)}
}

// With returns a child logger with the given attributes.
func (l *Logger) With(opts ...AttrOption) *Logger {
	c := l.zl.With()
	for _, opt := range opts {
		c = opt(c)
	}

	zl := c.Logger()

	return &Logger{zl: &zl}
}

// WithContext stores the logger in ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.zl.WithContext(ctx)
}

// Unwrap returns the underlying zerolog logger.
func (l *Logger) Unwrap() *zerolog.Logger {
	return l.zl
}

func (l *Logger) Trace(msg string) {
	l.zl.Trace().Msg(msg)
}

func (l *Logger) Tracef(msg string, args ...any) {
	l.zl.Trace().Msgf(msg, args...)
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.zl.Debug().Msgf(msg, args...)
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.zl.Info().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.zl.Warn().Msgf(msg, args...)
}

func (l *Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func (l *Logger) Errorf(err error, msg string, args ...any) {
	l.zl.Error().Err(err).Msgf(msg, args...)
}
