package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

// Interface -.
type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

// Logger -.
type Logger struct {
	logger *zerolog.Logger
	out    io.Writer
	sentry bool
}

var _ Interface = (*Logger)(nil)

// New -.
func New(level string, opts ...Option) *Logger {
	l := &Logger{out: os.Stdout}

	for _, opt := range opts {
		opt(l)
	}

	zl := zerolog.New(l.out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	l.logger = &zl

	return l
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug -.
func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.write(l.logger.Debug(), message, args...)
}

// Info -.
func (l *Logger) Info(message string, args ...interface{}) {
	l.write(l.logger.Info(), message, args...)
}

// Warn -.
func (l *Logger) Warn(message string, args ...interface{}) {
	l.write(l.logger.Warn(), message, args...)
}

// Error logs err (or a plain message). With an error as message, the first
// string argument is the call site and the rest are its format arguments.
func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.capture(message)
	l.write(l.logger.Error(), message, args...)
}

// Fatal -.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.capture(message)
	if l.sentry {
		sentry.Flush(_sentryFlushTimeout)
	}

	l.write(l.logger.Error(), message, args...)

	os.Exit(1)
}

func (l *Logger) write(event *zerolog.Event, message interface{}, args ...interface{}) {
	switch msg := message.(type) {
	case error:
		event = event.Err(msg)
		if len(args) == 0 {
			event.Send()

			return
		}

		where, ok := args[0].(string)
		if !ok {
			event.Msg(fmt.Sprint(args...))

			return
		}

		event.Msgf(where, args[1:]...)
	case string:
		if len(args) == 0 {
			event.Msg(msg)

			return
		}

		event.Msgf(msg, args...)
	default:
		event.Msgf("message %v has unknown type %T", message, message)
	}
}

func (l *Logger) capture(message interface{}) {
	if !l.sentry {
		return
	}

	switch msg := message.(type) {
	case error:
		sentry.CaptureException(msg)
	case string:
		sentry.CaptureMessage(msg)
	}
}
