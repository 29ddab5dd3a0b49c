package creational

import "fmt"

// Prototype is the cloneable capability: a Clone must be a deep,
// independent copy, so mutating the clone never affects the original.
type Prototype interface {
	Clone() Prototype
}

// Circle is a concrete prototype.
type Circle struct {
	Radius int
	Tags   []string
}

// Clone returns an independent deep copy of the circle.
func (c *Circle) Clone() Prototype {
	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)

	return &Circle{Radius: c.Radius, Tags: tags}
}

// Rectangle is a concrete prototype.
type Rectangle struct {
	Width, Height int
}

// Clone returns an independent copy of the rectangle.
func (r *Rectangle) Clone() Prototype {
	cp := *r
	return &cp
}

// Registry maps names to prototype instances. The registered instance is
// never handed out directly; Spawn always clones.
type Registry struct {
	prototypes map[string]Prototype
}

// NewRegistry returns an empty prototype registry.
func NewRegistry() *Registry {
	return &Registry{prototypes: make(map[string]Prototype)}
}

// Register stores p under name, replacing any previous registration.
func (r *Registry) Register(name string, p Prototype) {
	r.prototypes[name] = p
}

// Spawn returns a fresh clone of the prototype registered under name.
// Returns ErrUnknownPrototype if the name was never registered.
func (r *Registry) Spawn(name string) (Prototype, error) {
	p, ok := r.prototypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrototype, name)
	}

	return p.Clone(), nil
}
