package behavioral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/behavioral"
)

// TestChain_Dispatch walks the chain front to back and checks the
// fall-through sentinel.
func TestChain_Dispatch(t *testing.T) {
	chain := behavioral.NewChain(
		behavioral.ThrottleHandler{Blocked: map[string]bool{"mallory": true}},
		behavioral.AuthHandler{ValidToken: "s3cret"},
	)

	out, err := chain.Dispatch(behavioral.Request{User: "mallory", Token: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "throttled mallory", out, "earlier handler must win")

	out, err = chain.Dispatch(behavioral.Request{User: "alice", Token: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "auth ok for alice", out)

	_, err = chain.Dispatch(behavioral.Request{User: "bob", Token: "wrong"})
	assert.ErrorIs(t, err, behavioral.ErrUnhandled)
}

// TestInvoker_UndoLIFO runs two commands and undoes them in reverse order.
func TestInvoker_UndoLIFO(t *testing.T) {
	hall := &behavioral.Light{}
	porch := &behavioral.Light{}
	var inv behavioral.Invoker

	inv.Run(behavioral.ToggleCommand{Light: hall})
	inv.Run(behavioral.ToggleCommand{Light: porch})
	require.True(t, hall.On)
	require.True(t, porch.On)
	require.Equal(t, 2, inv.Pending())

	// LIFO: porch first, then hall
	require.NoError(t, inv.UndoLast())
	assert.True(t, hall.On)
	assert.False(t, porch.On)

	require.NoError(t, inv.UndoLast())
	assert.False(t, hall.On)

	assert.ErrorIs(t, inv.UndoLast(), behavioral.ErrNothingToUndo)
}

// TestInterpret covers evaluation and every rejection path.
func TestInterpret(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"7", 7},
		{"1 + 2", 3},
		{"10 - 4 + 1", 7},
		{"5 - 1 - 1", 3},
	}
	for _, tc := range cases {
		got, err := behavioral.Interpret(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	for _, bad := range []string{"", "1 * 2", "1 +", "one + 2"} {
		_, err := behavioral.Interpret(bad)
		assert.ErrorIs(t, err, behavioral.ErrBadToken, "input %q", bad)
	}
}

// TestPlaylist_Iterator checks order, exhaustion, and cursor independence.
func TestPlaylist_Iterator(t *testing.T) {
	var p behavioral.Playlist
	p.Append("intro")
	p.Append("verse")

	it := p.Iterator()
	var got []string
	for it.HasNext() {
		track, err := it.Next()
		require.NoError(t, err)
		got = append(got, track)
	}
	assert.Equal(t, []string{"intro", "verse"}, got)

	_, err := it.Next()
	assert.ErrorIs(t, err, behavioral.ErrExhausted)

	// a fresh cursor starts over
	fresh := p.Iterator()
	first, err := fresh.Next()
	require.NoError(t, err)
	assert.Equal(t, "intro", first)
}

// TestChatRoom_Broadcast relays to everyone except the sender.
func TestChatRoom_Broadcast(t *testing.T) {
	var room behavioral.ChatRoom
	alice := behavioral.NewUser("alice")
	bob := behavioral.NewUser("bob")
	carol := behavioral.NewUser("carol")
	room.Register(alice)
	room.Register(bob)
	room.Register(carol)

	room.Broadcast(alice, "hi all")

	assert.Empty(t, alice.Inbox, "sender must not receive its own message")
	assert.Equal(t, []string{"alice: hi all"}, bob.Inbox)
	assert.Equal(t, []string{"alice: hi all"}, carol.Inbox)
}

// TestEditor_SaveRestore saves, mutates, restores, and expects the
// intermediate state to be discarded.
func TestEditor_SaveRestore(t *testing.T) {
	e := &behavioral.Editor{Text: "draft one", Cursor: 5}
	snap := e.Save()

	e.Text = "totally rewritten"
	e.Cursor = 17
	e.Restore(snap)

	assert.Equal(t, "draft one", e.Text)
	assert.Equal(t, 5, e.Cursor)

	// the same snapshot applies again after further mutation
	e.Text = "again"
	e.Restore(snap)
	assert.Equal(t, "draft one", e.Text)
}

// TestDoor_Transitions walks the locked/unlocked state machine.
func TestDoor_Transitions(t *testing.T) {
	d := behavioral.NewDoor()
	assert.Equal(t, "locked", d.State())
	assert.Equal(t, "door is locked", d.Open())

	assert.Equal(t, "door unlocked", d.Toggle())
	assert.Equal(t, "unlocked", d.State())
	assert.Equal(t, "door opens", d.Open())

	assert.Equal(t, "door locked", d.Toggle())
	assert.Equal(t, "locked", d.State())
}

// TestSorter_SwapStrategy delegates to one strategy at a time and swaps
// at runtime.
func TestSorter_SwapStrategy(t *testing.T) {
	items := []string{"pear", "fig", "banana"}
	s := behavioral.NewSorter(behavioral.Alphabetical{})

	assert.Equal(t, []string{"banana", "fig", "pear"}, s.Sort(items))

	s.SetStrategy(behavioral.ByLength{})
	assert.Equal(t, []string{"fig", "pear", "banana"}, s.Sort(items))

	// input must remain untouched
	assert.Equal(t, []string{"pear", "fig", "banana"}, items)
}

// TestExport_SkeletonOrder runs the template method over fixed steps.
func TestExport_SkeletonOrder(t *testing.T) {
	got := behavioral.Export(behavioral.CSVExport{Records: []string{"a", "b"}})
	assert.Equal(t, []string{`"a"`, `"b"`}, got)

	assert.Empty(t, behavioral.Export(behavioral.CSVExport{}))
}

// TestVisitors computes both operations over both shapes without
// touching the shape types.
func TestVisitors(t *testing.T) {
	shapes := []behavioral.VisitableShape{
		behavioral.VCircle{Radius: 1},
		behavioral.VRect{Width: 2, Height: 3},
	}

	var areas, perims []float64
	for _, sh := range shapes {
		areas = append(areas, sh.Accept(behavioral.AreaVisitor{}))
		perims = append(perims, sh.Accept(behavioral.PerimeterVisitor{}))
	}

	assert.InDelta(t, 3.14159265, areas[0], 1e-6)
	assert.Equal(t, 6.0, areas[1])
	assert.InDelta(t, 6.28318530, perims[0], 1e-6)
	assert.Equal(t, 10.0, perims[1])
}
