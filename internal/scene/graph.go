package scene

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/junkover/internal/physics"
)

// Graph holds the nodes of one scene. Iteration follows insertion order.
type Graph struct {
	nodes  *intmap.Map[NodeID, *Node]
	order  []NodeID
	nextID NodeID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: intmap.New[NodeID, *Node](64),
	}
}

// Add inserts n, assigning it a fresh ID, and returns that ID.
// A node that is already in the graph is left alone.
func (g *Graph) Add(n *Node) NodeID {
	if n.ID != 0 && g.Contains(n.ID) {
		return n.ID
	}
	g.nextID++
	n.ID = g.nextID
	g.nodes.Put(n.ID, n)
	g.order = append(g.order, n.ID)
	return n.ID
}

// Remove deletes the node with the given ID. It reports whether the node was present.
func (g *Graph) Remove(id NodeID) bool {
	if !g.Contains(id) {
		return false
	}
	g.nodes.Del(id)
	if i := slices.Index(g.order, id); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}
	return true
}

// Contains reports whether a node with the given ID is in the graph.
func (g *Graph) Contains(id NodeID) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

// Get returns the node with the given ID.
func (g *Graph) Get(id NodeID) (*Node, bool) {
	return g.nodes.Get(id)
}

// Children returns the nodes in insertion order. The slice is a copy, so the
// caller may remove nodes while ranging over it.
func (g *Graph) Children() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		if n, ok := g.nodes.Get(id); ok {
			out = append(out, n)
		}
	}
	return out
}

// Bodies returns the nodes that carry a physics body.
func (g *Graph) Bodies() []physics.Object {
	out := make([]physics.Object, 0, len(g.order))
	for _, n := range g.Children() {
		if n.Body != nil {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first node with the given name.
func (g *Graph) Find(name string) (*Node, bool) {
	for _, n := range g.Children() {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// Clear removes every node. IDs keep increasing across clears.
func (g *Graph) Clear() {
	g.nodes.Clear()
	g.order = g.order[:0]
}
