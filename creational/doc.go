// Package creational collects the five classic creational patterns
// (abstract factory, builder, factory method, prototype, singleton),
// each as a small, self-contained, typed example.
//
// What
//
//   - AbstractFactory: a WidgetFactory produces a matched family of
//     widgets (button + checkbox); RenderDialog consumes one family.
//   - Builder: a ReportBuilder assembles an immutable Report in stages,
//     validating on Build.
//   - FactoryMethod: NewTransport selects a Transport variant by kind.
//   - Prototype: a Registry of cloneable prototypes; Spawn returns an
//     independent deep copy of a registered shape.
//   - Singleton: a Lazy cell owns the one permitted instance, built on
//     first Get and reused for the lifetime of the cell.
//
// Why
//
//	Each example isolates exactly one creation idiom. Every "must
//	implement" relationship is an interface, never an embedded base
//	struct: no example carries shared mutable base state, so the
//	substitution is lossless.
//
// Singleton, explicitly
//
//	The cell is constructed by the caller and passed where needed; there
//	is no package-level instance and no reset. Two Get calls on the same
//	cell return the identical pointer.
//
// Errors
//
//   - ErrEmptyTitle       if Build is called before SetTitle.
//   - ErrUnknownKind      if NewTransport receives an unsupported kind.
//   - ErrUnknownPrototype if Spawn references an unregistered name.
package creational
