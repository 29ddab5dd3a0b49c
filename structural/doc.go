// Package structural collects the seven classic structural patterns
// (adapter, bridge, composite, decorator, facade, flyweight, proxy),
// each as a small, self-contained, typed example.
//
// What
//
//   - Adapter: a legacy CelsiusSensor is adapted to the FahrenheitReader
//     capability without touching the legacy type.
//   - Bridge: Shape abstractions and Renderer implementors vary
//     independently; any shape draws through any renderer.
//   - Composite: a file-tree Node aggregates Size over files and
//     directories uniformly, in insertion order.
//   - Decorator: Notifier decorators stack delivery channels while
//     preserving the capability set.
//   - Facade: PlayerFacade hides the codec/buffer/output subsystems
//     behind a single Play call.
//   - Flyweight: a GlyphFactory interns intrinsic state (rune + face);
//     extrinsic state (position) is supplied per draw and never cached.
//   - Proxy: ImageProxy defers the expensive load until the first
//     Display and guards access by role.
//
// Why
//
//	Each example isolates exactly one composition idiom. All contracts
//	are interfaces; no example shares mutable base state.
//
// Errors
//
//   - ErrAccessDenied if a proxy caller lacks the required role.
package structural
