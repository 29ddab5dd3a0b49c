package liveupdate

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Subscriber is the websocket client: dial under the retry policy, then
// deliver each received text message to the handler until the context
// ends or the peer closes the stream.
type Subscriber struct {
	url    string
	opts   Options
	dialer *websocket.Dialer
}

// NewSubscriber builds a subscriber for url with the given options.
// Returns ErrEmptyURL or ErrOptionViolation for invalid input.
func NewSubscriber(url string, opts ...Option) (*Subscriber, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Subscriber{url: url, opts: o, dialer: websocket.DefaultDialer}, nil
}

// Run subscribes until ctx is cancelled or the peer performs a normal
// close. A dropped connection is redialed under the bounded policy; an
// exhausted dial budget aborts the run with an error wrapping
// ErrAttemptsExhausted.
func (s *Subscriber) Run(ctx context.Context, handle func(msg []byte)) error {
	if handle == nil {
		return ErrNilHandler
	}

	for {
		conn, err := s.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %w", ErrAttemptsExhausted, err)
		}

		closed, err := s.listen(ctx, conn, handle)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case closed:
			return nil
		default:
			s.opts.Logger.Warn("connection dropped, redialing",
				zap.String("url", s.url),
				zap.Error(err),
			)
		}
	}
}

// dial connects under the bounded fixed-delay retry policy.
func (s *Subscriber) dial(ctx context.Context) (*websocket.Conn, error) {
	var conn *websocket.Conn
	err := retry.Do(
		func() error {
			c, _, err := s.dialer.DialContext(ctx, s.url, nil)
			if err != nil {
				return err
			}
			conn = c

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.opts.Attempts),
		retry.Delay(s.opts.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.opts.Logger.Warn("dial attempt failed",
				zap.String("url", s.url),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)

	return conn, err
}

// listen delivers messages until the context ends, the peer closes, or
// the connection drops. The first result reports a clean peer close.
func (s *Subscriber) listen(ctx context.Context, conn *websocket.Conn, handle func(msg []byte)) (bool, error) {
	// unblock ReadMessage when the context ends
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return true, nil
			}
			return false, err
		}
		if kind == websocket.TextMessage {
			handle(msg)
		}
	}
}
