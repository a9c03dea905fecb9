// Package viewstate holds the observable state behind the list and detail
// screens. Operations start on the caller's goroutine; their completions are
// applied through a Dispatcher so a UI can keep all mutations on one thread.
package viewstate

import (
	"log/slog"
	"time"
)

// DefaultSearchDebounce is how long search text must be stable before a
// search runs.
const DefaultSearchDebounce = 300 * time.Millisecond

// Dispatcher runs state updates on the executor the consumer observes from.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// Inline applies updates on whichever goroutine completed the work.
var Inline Dispatcher = DispatcherFunc(func(fn func()) { fn() })

type options struct {
	dispatcher Dispatcher
	debounce   time.Duration
	log        *slog.Logger
}

// Option configures a state object.
type Option func(*options)

func WithDispatcher(d Dispatcher) Option {
	return func(o *options) {
		if d != nil {
			o.dispatcher = d
		}
	}
}

// WithDebounce sets the search debounce. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.log = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		dispatcher: Inline,
		debounce:   DefaultSearchDebounce,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
