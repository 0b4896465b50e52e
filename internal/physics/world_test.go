package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/junkover/internal/core"
)

type obj struct {
	key  uint64
	pos  core.Vec2
	body *Body
}

func (o *obj) Key() uint64             { return o.key }
func (o *obj) Position() core.Vec2     { return o.pos }
func (o *obj) SetPosition(p core.Vec2) { o.pos = p }
func (o *obj) PhysicsBody() *Body      { return o.body }

const (
	player Category = 0x1
	junk   Category = 0x2
	bonus  Category = 0x4
)

func TestStepIntegratesVelocity(t *testing.T) {
	w := NewWorld()
	o := &obj{key: 1, pos: core.Vec2{X: 1200}, body: &Body{Velocity: core.Vec2{X: -500}, W: 1, H: 1}}

	w.Step([]Object{o}, 100*time.Millisecond)
	assert.InDelta(t, 1150, o.pos.X, 1e-9)
	assert.InDelta(t, 0, o.pos.Y, 1e-9)
}

func TestStepLinearDamping(t *testing.T) {
	w := NewWorld()
	o := &obj{key: 1, body: &Body{Velocity: core.Vec2{X: 100}, LinearDamping: 1, W: 1, H: 1}}

	w.Step([]Object{o}, time.Second)
	assert.InDelta(t, 50, o.body.Velocity.X, 1e-9)
}

func TestContactBeginsOnce(t *testing.T) {
	w := NewWorld()
	p := &obj{key: 1, body: &Body{Category: player, ContactMask: player | junk | bonus, CollisionMask: junk, W: 10, H: 10}}
	s := &obj{key: 2, pos: core.Vec2{X: 5}, body: &Body{Category: bonus, ContactMask: player | junk | bonus, W: 10, H: 10}}
	objs := []Object{p, s}

	contacts := w.Step(objs, 0)
	require.Len(t, contacts, 1)
	assert.Equal(t, s.Key(), contacts[0].Other(p).Key())

	assert.Empty(t, w.Step(objs, 0), "still touching, no new contact")

	s.pos.X = 100
	assert.Empty(t, w.Step(objs, 0))

	s.pos.X = 0
	assert.Len(t, w.Step(objs, 0), 1, "a new overlap episode reports again")
}

func TestContactFilteredByMasks(t *testing.T) {
	w := NewWorld()
	a := &obj{key: 1, body: &Body{Category: junk, W: 10, H: 10}}
	b := &obj{key: 2, body: &Body{Category: junk, W: 10, H: 10}}

	assert.Empty(t, w.Step([]Object{a, b}, 0), "no contact mask on either side")

	w.Reset()
	b.body.ContactMask = junk
	assert.Len(t, w.Step([]Object{a, b}, 0), 1, "one side's mask is enough")
}

func TestCollisionResponseFollowsMask(t *testing.T) {
	w := NewWorld()
	p := &obj{key: 1, body: &Body{Category: player, CollisionMask: junk, W: 10, H: 10}}
	s := &obj{key: 2, body: &Body{Category: bonus, CollisionMask: junk | bonus, Velocity: core.Vec2{X: -500}, W: 10, H: 10}}

	w.Step([]Object{p, s}, 0)
	assert.Equal(t, core.Vec2{}, p.body.Velocity, "player ignores bonus collisions")
	assert.Equal(t, core.Vec2{X: -500}, s.body.Velocity, "bonus does not collide with player")

	a := &obj{key: 3, pos: core.Vec2{X: 100}, body: &Body{Category: junk, CollisionMask: player | junk | bonus, Velocity: core.Vec2{X: -500}, W: 10, H: 10}}
	q := &obj{key: 4, pos: core.Vec2{X: 100}, body: &Body{Category: player, CollisionMask: junk, W: 10, H: 10}}
	w.Step([]Object{a, q}, 0)
	assert.Equal(t, core.Vec2{X: -500}, q.body.Velocity)
	assert.Equal(t, core.Vec2{}, a.body.Velocity)
}

func TestContactOther(t *testing.T) {
	a := &obj{key: 1}
	b := &obj{key: 2}
	c := Contact{A: a, B: b}

	assert.Equal(t, b, c.Other(a))
	assert.Equal(t, a, c.Other(b))
	assert.Nil(t, c.Other(&obj{key: 3}))
	assert.True(t, c.Involves(b))
	assert.False(t, c.Involves(nil))
}
