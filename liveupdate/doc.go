// Package liveupdate holds the catalog's two client-side transport
// snippets, a long-polling loop and a websocket subscriber, promoted
// from "retry forever" sketches to explicit bounded, cancellable retry
// policies.
//
// What
//
//   - Poller: a repeating poll-then-handle HTTP loop. Each cycle issues
//     one GET under the retry policy and hands the response body to the
//     handler, then sleeps for the poll interval.
//   - Subscriber: a websocket client that dials under the retry policy
//     and delivers each received text message to the handler. A dropped
//     connection is redialed under the same bounded policy; a normal
//     peer close ends the run cleanly.
//
// Retry policy
//
//	Both transports take a context for cancellation and a fixed-delay,
//	bounded attempt budget: WithAttempts(5) and WithDelay(2s) by
//	default, no backoff growth. Unbounded retry remains available, but
//	only by explicit WithAttempts(0).
//
// Logging
//
//	Transport attempts are logged through a zap.Logger; the default is
//	zap.NewNop(), so the package is silent unless a logger is supplied.
//
// Usage
//
//	p, err := liveupdate.NewPoller("https://feed.example.com/updates",
//	    liveupdate.WithInterval(time.Second),
//	    liveupdate.WithAttempts(3),
//	    liveupdate.WithLogger(log),
//	)
//	if err != nil { ... }
//	err = p.Run(ctx, func(body []byte) { ... })
//
// Errors
//
//   - ErrEmptyURL           if a transport is built with an empty URL.
//   - ErrNilHandler         if Run is given a nil handler.
//   - ErrOptionViolation    if an invalid Option is supplied.
//   - ErrAttemptsExhausted  if the bounded budget runs out; the last
//     transport error is attached via %w chaining.
//   - ErrBadStatus          (wrapped) for non-2xx poll responses.
package liveupdate
