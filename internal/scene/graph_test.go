package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/physics"
)

func TestGraphAddRemove(t *testing.T) {
	g := NewGraph()
	a := &Node{Name: "asteroid"}
	b := &Node{Name: "star"}

	idA := g.Add(a)
	idB := g.Add(b)
	require.NotEqual(t, idA, idB)
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Contains(idA))

	assert.True(t, g.Remove(idA))
	assert.False(t, g.Remove(idA), "second remove is a no-op")
	assert.False(t, g.Contains(idA))
	assert.Equal(t, []*Node{b}, g.Children())
}

func TestGraphAddTwiceKeepsID(t *testing.T) {
	g := NewGraph()
	n := &Node{Name: "player-rocket"}
	id := g.Add(n)
	assert.Equal(t, id, g.Add(n))
	assert.Equal(t, 1, g.Len())
}

func TestGraphChildrenOrderAndCopy(t *testing.T) {
	g := NewGraph()
	var ids []NodeID
	for _, name := range []string{"space-junk", "star", "asteroid", "energy"} {
		ids = append(ids, g.Add(&Node{Name: name}))
	}

	children := g.Children()
	require.Len(t, children, 4)
	for i, n := range children {
		assert.Equal(t, ids[i], n.ID)
	}

	// Removing while ranging over the copy is safe.
	for _, n := range children {
		g.Remove(n.ID)
	}
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Children())
}

func TestGraphBodiesAndFind(t *testing.T) {
	g := NewGraph()
	g.Add(&Node{Name: "space", Kind: KindSprite})
	rocket := &Node{Name: "player-rocket", Body: &physics.Body{Category: 0x1}, Pos: core.Vec2{X: -400}}
	g.Add(rocket)

	bodies := g.Bodies()
	require.Len(t, bodies, 1)
	assert.Equal(t, rocket.Key(), bodies[0].Key())

	found, ok := g.Find("player-rocket")
	require.True(t, ok)
	assert.Same(t, rocket, found)

	_, ok = g.Find("missing")
	assert.False(t, ok)
}

func TestGraphClear(t *testing.T) {
	g := NewGraph()
	first := g.Add(&Node{})
	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Greater(t, g.Add(&Node{}), first, "IDs are never reused")
}
