package creational

import "errors"

var (
	// ErrEmptyTitle indicates Build was called on a ReportBuilder with no title.
	ErrEmptyTitle = errors.New("creational: report title must not be empty")
	// ErrUnknownKind indicates NewTransport received an unsupported TransportKind.
	ErrUnknownKind = errors.New("creational: unknown transport kind")
	// ErrUnknownPrototype indicates Spawn referenced a name with no registered prototype.
	ErrUnknownPrototype = errors.New("creational: prototype not registered")
)
