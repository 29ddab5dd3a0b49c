package behavioral_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/patterns/behavioral"
)

// recorder is a pointer-backed observer so it can be detached.
type recorder struct {
	name   string
	events []string
}

func (r *recorder) Update(event string) { r.events = append(r.events, r.name+":"+event) }

// TestSubject_NotifyOrder attaches two observers, notifies once, and
// checks that both receive exactly one update in attachment order.
func TestSubject_NotifyOrder(t *testing.T) {
	var s behavioral.Subject
	var order []string
	first := behavioral.ObserverFunc(func(e string) { order = append(order, "first:"+e) })
	second := behavioral.ObserverFunc(func(e string) { order = append(order, "second:"+e) })

	s.Attach(first)
	s.Attach(second)
	s.Notify("tick")

	if want := []string{"first:tick", "second:tick"}; !reflect.DeepEqual(order, want) {
		t.Errorf("notification order = %v; want %v", order, want)
	}
}

// TestSubject_Detach verifies that after detaching one observer only the
// remaining one is called.
func TestSubject_Detach(t *testing.T) {
	var s behavioral.Subject
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}
	s.Attach(a)
	s.Attach(b)

	s.Notify("one")
	s.Detach(a)
	s.Notify("two")

	if want := []string{"a:one"}; !reflect.DeepEqual(a.events, want) {
		t.Errorf("detached observer events = %v; want %v", a.events, want)
	}
	if want := []string{"b:one", "b:two"}; !reflect.DeepEqual(b.events, want) {
		t.Errorf("remaining observer events = %v; want %v", b.events, want)
	}
}

// TestSubject_DuplicatesAllowed attaches the same observer twice and
// expects two updates per notification; Detach removes only the first
// registration.
func TestSubject_DuplicatesAllowed(t *testing.T) {
	var s behavioral.Subject
	r := &recorder{name: "dup"}
	s.Attach(r)
	s.Attach(r)

	s.Notify("x")
	if got := len(r.events); got != 2 {
		t.Fatalf("duplicate subscription: got %d updates; want 2", got)
	}

	s.Detach(r)
	if got := s.Len(); got != 1 {
		t.Errorf("after Detach: Len() = %d; want 1", got)
	}
	s.Notify("y")
	if got := len(r.events); got != 3 {
		t.Errorf("after Detach: got %d total updates; want 3", got)
	}
}

// TestSubject_DetachDuringNotify pins the snapshot policy: an observer
// detaching itself mid-notification does not disturb the in-progress
// iteration.
func TestSubject_DetachDuringNotify(t *testing.T) {
	var s behavioral.Subject
	tail := &recorder{name: "tail"}

	selfDetaching := &selfDetacher{}
	selfDetaching.subject = &s
	s.Attach(selfDetaching)
	s.Attach(tail)

	s.Notify("first")
	// tail was attached when the snapshot was taken, so it still fires
	if want := []string{"tail:first"}; !reflect.DeepEqual(tail.events, want) {
		t.Errorf("in-progress iteration disturbed: tail events = %v; want %v", tail.events, want)
	}

	s.Notify("second")
	if selfDetaching.calls != 1 {
		t.Errorf("self-detached observer called %d times; want 1", selfDetaching.calls)
	}
	if want := []string{"tail:first", "tail:second"}; !reflect.DeepEqual(tail.events, want) {
		t.Errorf("tail events = %v; want %v", tail.events, want)
	}
}

type selfDetacher struct {
	subject *behavioral.Subject
	calls   int
}

func (d *selfDetacher) Update(string) {
	d.calls++
	d.subject.Detach(d)
}

// TestSubject_DetachUnknown must be a no-op.
func TestSubject_DetachUnknown(t *testing.T) {
	var s behavioral.Subject
	s.Attach(&recorder{name: "only"})
	s.Detach(&recorder{name: "stranger"})
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d; want 1", got)
	}
}

// TestSubject_DetachObserverFunc pins that detaching a func-backed
// observer is a safe no-op: function values are uncomparable, so the
// registration stays and nothing panics.
func TestSubject_DetachObserverFunc(t *testing.T) {
	var s behavioral.Subject
	var calls int
	f := behavioral.ObserverFunc(func(string) { calls++ })

	s.Attach(f)
	s.Detach(f)

	if got := s.Len(); got != 1 {
		t.Errorf("after Detach: Len() = %d; want 1", got)
	}
	s.Notify("still-here")
	if calls != 1 {
		t.Errorf("observer called %d times; want 1", calls)
	}
}
