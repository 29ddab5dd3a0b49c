package behavioral

import "fmt"

// Request is the payload passed along the chain.
type Request struct {
	User  string
	Token string
	Body  string
}

// Handler is one link's capability: report whether it can take the
// request, and handle it if so.
type Handler interface {
	CanHandle(r Request) bool
	Handle(r Request) string
}

// AuthHandler consumes requests carrying a valid token.
type AuthHandler struct {
	ValidToken string
}

// CanHandle reports whether the request's token matches.
func (h AuthHandler) CanHandle(r Request) bool { return r.Token == h.ValidToken }

// Handle admits the authenticated user.
func (h AuthHandler) Handle(r Request) string { return "auth ok for " + r.User }

// ThrottleHandler consumes requests from users it has capacity for.
type ThrottleHandler struct {
	Blocked map[string]bool
}

// CanHandle reports whether the user is currently blocked.
func (h ThrottleHandler) CanHandle(r Request) bool { return h.Blocked[r.User] }

// Handle rejects the throttled user.
func (h ThrottleHandler) Handle(r Request) string { return "throttled " + r.User }

// Chain is an ordered list of handlers. Dispatch walks it front to back
// and lets the first able handler consume the request.
type Chain struct {
	handlers []Handler
}

// NewChain builds a chain from handlers in the given order.
func NewChain(handlers ...Handler) *Chain { return &Chain{handlers: handlers} }

// Dispatch hands the request to the first handler whose CanHandle
// returns true. If every handler declines, it returns ErrUnhandled.
func (c *Chain) Dispatch(r Request) (string, error) {
	for _, h := range c.handlers {
		if h.CanHandle(r) {
			return h.Handle(r), nil
		}
	}

	return "", fmt.Errorf("%w: user=%q", ErrUnhandled, r.User)
}
