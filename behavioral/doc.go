// Package behavioral collects the eleven classic behavioral patterns
// (chain of responsibility, command, interpreter, iterator, mediator,
// memento, observer, state, strategy, template method, visitor),
// each as a small, self-contained, typed example.
//
// What
//
//   - Chain: an ordered Handler slice; the first able handler consumes
//     the request, fall-through returns ErrUnhandled.
//   - Command: Execute/Undo capabilities with a LIFO history.
//   - Interpreter: a tiny infix integer grammar over "+" and "-".
//   - Iterator: a cursor (HasNext/Next) over an insertion-ordered
//     collection.
//   - Mediator: a chat room relaying between registered peers, sender
//     excluded.
//   - Memento: an Editor originator with opaque snapshots; Restore
//     returns the editor to exactly the saved state.
//   - Observer: a Subject with an insertion-ordered subscription
//     registry; Notify invokes each currently-attached observer once,
//     synchronously, in attachment order.
//   - State: a Door whose behavior changes with its current state.
//   - Strategy: a Sorter context delegating to exactly one SortStrategy.
//   - Template method: a fixed export skeleton with pluggable steps.
//   - Visitor: area/perimeter visitors over a closed shape set.
//
// Observer notification policy
//
//	Notify iterates a snapshot of the registry taken before the first
//	callback. An observer that attaches or detaches during notification
//	affects only subsequent Notify calls, never the one in progress.
//	Duplicates are permitted; Detach removes the first match only.
//
// Errors
//
//   - ErrUnhandled    if no chain handler consumes a request.
//   - ErrBadToken     if the interpreter meets an unsupported token.
//   - ErrNothingToUndo if Undo is called on an empty history.
//   - ErrExhausted    if Next is called past the end of an iterator.
package behavioral
