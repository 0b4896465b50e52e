// Package scene is the node graph the junkover host renders and simulates.
// Nodes are plain data; the graph owns membership and draw order.
package scene

import (
	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/physics"
)

// NodeID identifies a node within one graph.
type NodeID uint64

// Kind says how the host should present a node.
type Kind int

const (
	KindSprite  Kind = iota // textured sprite, drawn by name
	KindLabel               // text label
	KindEmitter             // particle effect anchor
	KindAudio               // looping audio source
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindLabel:
		return "label"
	case KindEmitter:
		return "emitter"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Node is one object in the scene.
type Node struct {
	ID   NodeID
	Name string // texture, effect or cue identifier; may be empty
	Kind Kind
	Text string // label text
	Pos  core.Vec2
	Z    int

	Body *physics.Body // nil for nodes that take no part in physics
}

// Key implements physics.Object.
func (n *Node) Key() uint64 { return uint64(n.ID) }

// Position implements physics.Object.
func (n *Node) Position() core.Vec2 { return n.Pos }

// SetPosition implements physics.Object.
func (n *Node) SetPosition(p core.Vec2) { n.Pos = p }

// PhysicsBody implements physics.Object.
func (n *Node) PhysicsBody() *physics.Body { return n.Body }
