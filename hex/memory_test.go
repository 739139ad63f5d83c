package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMemory(t *testing.T) {
	m := NewMemory()
	require.Equal(t, 1, m.Rings())
	require.Equal(t, Edge(0), m.edge(newPointer()))
}

func TestEdgeSlotIgnoresFacing(t *testing.T) {
	m := NewMemory()
	mp := newPointer()
	m.setEdge(mp, 5)
	reversed := mp
	reversed.reverse()
	require.Equal(t, Edge(5), m.edge(reversed))
	m.setEdge(reversed, -3)
	require.Equal(t, Edge(-3), m.edge(mp))
}

// Six consecutive moves to the same side walk the pointer around one
// hexagon and back to where it started.
func TestMoveCycle(t *testing.T) {
	for _, s := range []side{left, right} {
		mp := newPointer()
		states := map[pointer]bool{mp: true}
		for i := 0; i < 5; i++ {
			mp.move(s)
			require.False(t, states[mp], "side %d revisited %+v after %d moves", s, mp, i+1)
			states[mp] = true
		}
		mp.move(s)
		require.Equal(t, newPointer(), mp, "side %d", s)
	}
}

func TestMoveTraces(t *testing.T) {
	// Single moves from the initial pointer.
	mp := newPointer()
	mp.move(left)
	require.Equal(t, pointer{p: 0, q: -1, axis: Y}, mp)

	mp = newPointer()
	mp.move(right)
	require.Equal(t, pointer{p: -1, q: 0, axis: X}, mp)

	// Moving from an in-facing pointer flips it out without re-anchoring.
	mp = pointer{p: 0, q: -1, axis: Y}
	mp.move(left)
	require.Equal(t, pointer{p: 0, q: -1, axis: X, out: true}, mp)
}

func TestReverse(t *testing.T) {
	mp := newPointer()
	mp.reverse()
	require.Equal(t, pointer{axis: Z, out: false}, mp)
	mp.reverse()
	require.Equal(t, newPointer(), mp)
}

// The neighbor read through a pointer is the edge the pointer lands on
// after moving to that side.
func TestNeighborMatchesMove(t *testing.T) {
	m := NewMemory()
	mp := newPointer()
	walk := []side{left, right, right, left, left, left, right, left, right, right}
	for i, s := range walk {
		moved := mp
		moved.move(s)
		m.setEdge(moved, Edge(i+1))
		require.Equal(t, Edge(i+1), m.neighbor(mp, s), "step %d side %d", i, s)
		mp = moved
	}
}

func TestGrowth(t *testing.T) {
	m := NewMemory()
	origin := newPointer()
	m.setEdge(origin, 7)

	far := pointer{p: 5, q: -2, axis: X}
	m.setEdge(far, 42)
	require.GreaterOrEqual(t, m.Rings(), 6)
	require.Equal(t, Edge(42), m.edge(far))
	// Growth preserves earlier cells.
	require.Equal(t, Edge(7), m.edge(origin))
	// New cells read as zero.
	require.Equal(t, Edge(0), m.edge(pointer{p: 3, q: 1, axis: Y}))
}

func TestPeekDoesNotGrow(t *testing.T) {
	m := NewMemory()
	require.Equal(t, memoryCell{}, m.peek(4, 4))
	require.Equal(t, 1, m.Rings())
}
