package creational

import "fmt"

// TransportKind selects a Transport variant in NewTransport.
type TransportKind int

const (
	// KindRoad selects truck delivery.
	KindRoad TransportKind = iota
	// KindSea selects ship delivery.
	KindSea
)

// Transport is the capability produced by the factory method: one way of
// delivering a cargo, described as text.
type Transport interface {
	Deliver(cargo string) string
}

type truck struct{}

func (truck) Deliver(cargo string) string { return "truck delivers " + cargo + " by road" }

type ship struct{}

func (ship) Deliver(cargo string) string { return "ship delivers " + cargo + " by sea" }

// NewTransport is the factory method: callers name a kind, never a
// concrete type. An unsupported kind returns ErrUnknownKind.
func NewTransport(kind TransportKind) (Transport, error) {
	switch kind {
	case KindRoad:
		return truck{}, nil
	case KindSea:
		return ship{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}
