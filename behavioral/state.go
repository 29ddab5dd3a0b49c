package behavioral

// DoorState is one state's behavior: each operation returns what
// happened, and may move the door to another state.
type DoorState interface {
	Name() string
	Open(d *Door) string
	Toggle(d *Door) string
}

// Door delegates every operation to its current state.
type Door struct {
	state DoorState
}

// NewDoor returns a door in the locked state.
func NewDoor() *Door { return &Door{state: lockedState{}} }

// State returns the current state's name.
func (d *Door) State() string { return d.state.Name() }

// Open attempts to open the door; the outcome depends on the state.
func (d *Door) Open() string { return d.state.Open(d) }

// Toggle flips the lock, moving the door to the opposite state.
func (d *Door) Toggle() string { return d.state.Toggle(d) }

type lockedState struct{}

func (lockedState) Name() string { return "locked" }

func (lockedState) Open(*Door) string { return "door is locked" }

func (lockedState) Toggle(d *Door) string {
	d.state = unlockedState{}
	return "door unlocked"
}

type unlockedState struct{}

func (unlockedState) Name() string { return "unlocked" }

func (unlockedState) Open(*Door) string { return "door opens" }

func (unlockedState) Toggle(d *Door) string {
	d.state = lockedState{}
	return "door locked"
}
