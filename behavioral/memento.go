package behavioral

// Memento is the opaque snapshot of one Editor's state. Nothing outside
// this file can read or alter its contents; callers only carry it back
// to Restore.
type Memento struct {
	text   string
	cursor int
}

// Editor is the originator: the object whose state is snapshotted.
type Editor struct {
	Text   string
	Cursor int
}

// Save captures the editor's current state in an opaque snapshot.
func (e *Editor) Save() Memento {
	return Memento{text: e.Text, cursor: e.Cursor}
}

// Restore returns the editor to exactly the state captured in m.
// Whatever state the editor held between Save and Restore is discarded.
func (e *Editor) Restore(m Memento) {
	e.Text = m.text
	e.Cursor = m.cursor
}
