package liveupdate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// Poller is the repeating poll-then-handle loop: one GET per cycle
// under the retry policy, then the poll interval, until the context
// ends.
type Poller struct {
	url  string
	opts Options
}

// NewPoller builds a poller for url with the given options.
// Returns ErrEmptyURL or ErrOptionViolation for invalid input.
func NewPoller(url string, opts ...Option) (*Poller, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Poller{url: url, opts: o}, nil
}

// Run polls until ctx is cancelled, handing each response body to
// handle. A cycle whose retry budget is exhausted aborts the run with
// an error wrapping ErrAttemptsExhausted; cancellation returns ctx.Err().
func (p *Poller) Run(ctx context.Context, handle func(body []byte)) error {
	if handle == nil {
		return ErrNilHandler
	}

	ticker := time.NewTicker(p.opts.Interval)
	defer ticker.Stop()
	for cycle := 1; ; cycle++ {
		body, err := p.pollOnce(ctx, cycle)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		handle(body)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// pollOnce issues one GET under the bounded fixed-delay retry policy.
func (p *Poller) pollOnce(ctx context.Context, cycle int) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
			if err != nil {
				return err
			}
			resp, err := p.opts.HTTPClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
			}
			body, err = io.ReadAll(resp.Body)

			return err
		},
		retry.Context(ctx),
		retry.Attempts(p.opts.Attempts),
		retry.Delay(p.opts.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			p.opts.Logger.Warn("poll attempt failed",
				zap.String("url", p.url),
				zap.Int("cycle", cycle),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrAttemptsExhausted, err)
	}

	return body, nil
}
