package logger

import (
	"io"
	"time"
)

const _sentryFlushTimeout = 2 * time.Second

// Option -.
type Option func(*Logger)

// Output -.
func Output(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithSentry forwards Error and Fatal to Sentry. sentry.Init must be called beforehand.
func WithSentry(enabled bool) Option {
	return func(l *Logger) {
		l.sentry = enabled
	}
}
