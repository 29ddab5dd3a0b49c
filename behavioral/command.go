package behavioral

// Command is the reversible-operation capability.
type Command interface {
	Execute()
	Undo()
}

// Light is the receiver commands act on.
type Light struct {
	On bool
}

// ToggleCommand flips the light; Undo flips it back.
type ToggleCommand struct {
	Light *Light
}

// Execute toggles the light state.
func (c ToggleCommand) Execute() { c.Light.On = !c.Light.On }

// Undo toggles again; for a toggle the inverse is itself.
func (c ToggleCommand) Undo() { c.Light.On = !c.Light.On }

// Invoker executes commands and keeps a history for LIFO undo.
type Invoker struct {
	history []Command
}

// Run executes cmd and pushes it onto the history.
func (i *Invoker) Run(cmd Command) {
	cmd.Execute()
	i.history = append(i.history, cmd)
}

// UndoLast pops the most recent command and undoes it.
// Returns ErrNothingToUndo on an empty history.
func (i *Invoker) UndoLast() error {
	if len(i.history) == 0 {
		return ErrNothingToUndo
	}
	last := i.history[len(i.history)-1]
	i.history = i.history[:len(i.history)-1]
	last.Undo()

	return nil
}

// Pending reports how many commands remain undoable.
func (i *Invoker) Pending() int { return len(i.history) }
