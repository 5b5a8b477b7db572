package doc2pdf

import (
	"log/slog"
	"time"
)

// Option configures a Queue, Converter or Extractor. Options that do not
// apply to a constructor are ignored by it.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	now      func() time.Time
	notifier func(Event)
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source used for PDF creation dates and
// durations. A fixed clock makes output byte-for-byte reproducible.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithNotifier sets the function receiving queue events. It is called on
// the worker goroutine, in pop order, and must not block for long.
func WithNotifier(fn func(Event)) Option {
	return func(o *options) {
		o.notifier = fn
	}
}
