package behavioral

import "reflect"

// Observer receives one Update call per notification it is attached for.
type Observer interface {
	Update(event string)
}

// ObserverFunc adapts a plain function to the Observer capability.
// Function values are not comparable, so Detach never matches an
// ObserverFunc; use a pointer-backed observer where detachment is
// needed.
type ObserverFunc func(event string)

// Update calls the wrapped function.
func (f ObserverFunc) Update(event string) { f(event) }

// Subject holds an insertion-ordered subscription registry.
// Duplicates are permitted: attaching the same observer twice means it
// is invoked twice per notification.
type Subject struct {
	observers []Observer
}

// Attach appends obs to the registry, preserving attachment order.
func (s *Subject) Attach(obs Observer) {
	s.observers = append(s.observers, obs)
}

// Detach removes the first registered occurrence of obs; later
// duplicates stay attached. Detaching an unknown observer, or one of an
// uncomparable dynamic type, is a no-op.
func (s *Subject) Detach(obs Observer) {
	for i, o := range s.observers {
		if sameObserver(o, obs) {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// sameObserver reports whether two registered observers are the same
// value. Uncomparable dynamic types (ObserverFunc included) never
// match, so the comparison cannot panic.
func sameObserver(a, b Observer) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return ta == nil && tb == nil
	}

	return a == b
}

// Notify invokes every currently-attached observer once, synchronously,
// in attachment order, with the same event.
//
// The registry is snapshotted before the first callback: an observer
// that attaches or detaches (itself included) during notification
// affects only subsequent Notify calls, never the iteration in progress.
func (s *Subject) Notify(event string) {
	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)
	for _, o := range snapshot {
		o.Update(event)
	}
}

// Len reports the current number of subscriptions (duplicates counted).
func (s *Subject) Len() int { return len(s.observers) }
