// Package liveupdate provides tunable options and error definitions for
// the polling and websocket transports.
package liveupdate

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for transport construction and execution.
var (
	// ErrEmptyURL is returned when a transport is built with an empty URL.
	ErrEmptyURL = errors.New("liveupdate: url must not be empty")

	// ErrNilHandler is returned when Run is given a nil handler.
	ErrNilHandler = errors.New("liveupdate: handler must not be nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("liveupdate: invalid option supplied")

	// ErrAttemptsExhausted is returned when the bounded retry budget runs
	// out without a successful attempt.
	ErrAttemptsExhausted = errors.New("liveupdate: retry attempts exhausted")

	// ErrBadStatus is returned (wrapped) for non-2xx poll responses.
	ErrBadStatus = errors.New("liveupdate: unexpected response status")
)

// Default retry policy: five fixed-delay attempts, no backoff growth.
const (
	// DefaultAttempts bounds the retry budget.
	DefaultAttempts = 5
	// DefaultDelay separates consecutive attempts.
	DefaultDelay = 2 * time.Second
	// DefaultInterval separates successful poll cycles.
	DefaultInterval = time.Second
)

// Option configures a transport via functional arguments.
// An invalid Option (e.g. negative delay) is recorded internally and
// surfaced as ErrOptionViolation when the transport is constructed.
type Option func(*Options)

// Options holds the shared retry/logging knobs of both transports.
type Options struct {
	// Attempts bounds the retry budget; 0 explicitly means unbounded.
	Attempts uint

	// Delay is the fixed pause between attempts; it never grows.
	Delay time.Duration

	// Interval is the pause between successful poll cycles (Poller only).
	Interval time.Duration

	// Logger receives attempt-level transport events.
	Logger *zap.Logger

	// HTTPClient performs poll requests (Poller only).
	HTTPClient *http.Client

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the bounded default policy:
//   - 5 attempts, 2s fixed delay, 1s poll interval
//   - no-op logger
//   - http.DefaultClient
func DefaultOptions() Options {
	return Options{
		Attempts:   DefaultAttempts,
		Delay:      DefaultDelay,
		Interval:   DefaultInterval,
		Logger:     zap.NewNop(),
		HTTPClient: http.DefaultClient,
	}
}

// WithAttempts bounds the retry budget.
//
//	n > 0: at most n attempts per cycle
//	n == 0: explicit unbounded retry (the original sketch's behavior)
//	n < 0: invalid option → ErrOptionViolation
func WithAttempts(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Attempts cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.Attempts = uint(n)
		}
	}
}

// WithDelay sets the fixed pause between attempts.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithInterval sets the pause between successful poll cycles.
// The interval drives the poller's ticker and must be positive.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: Interval must be positive (%s)", ErrOptionViolation, d)
			return
		}
		o.Interval = d
	}
}

// WithLogger sets the transport logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHTTPClient replaces the poller's HTTP client; tests inject a
// server-bound client here.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) {
		if c != nil {
			o.HTTPClient = c
		}
	}
}

// resolveOptions applies opts over the defaults and surfaces the first
// recorded violation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
