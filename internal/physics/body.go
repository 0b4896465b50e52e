// Package physics is the minimal body and contact layer the terminal host uses
// in place of a real physics engine. It moves bodies by their velocity, reports
// when filtered overlaps begin, and exchanges velocities on blocking overlaps.
// It has no rotation, mass distribution, or penetration solving.
package physics

import "github.com/vovakirdan/junkover/internal/core"

// Category is a physics category bitmask. Each kind of body owns one bit.
type Category uint32

// Has reports whether any bit of o is set in c.
func (c Category) Has(o Category) bool {
	return c&o != 0
}

// Body carries the physical properties of a scene object.
type Body struct {
	Category      Category // what this body is
	ContactMask   Category // categories whose overlap raises a contact
	CollisionMask Category // categories this body is pushed by

	Velocity       core.Vec2 // world units per second
	LinearDamping  float64
	AngularDamping float64
	Density        float64

	W, H float64 // hitbox size in world units
}

// NotifiesWith reports whether an overlap between b and o raises a contact.
// Either side's contact mask is enough.
func (b *Body) NotifiesWith(o *Body) bool {
	return b.ContactMask.Has(o.Category) || o.ContactMask.Has(b.Category)
}

// RespondsTo reports whether b is pushed when it overlaps o.
func (b *Body) RespondsTo(o *Body) bool {
	return b.CollisionMask.Has(o.Category)
}

// Object is anything in the scene that carries a body.
type Object interface {
	Key() uint64
	Position() core.Vec2
	SetPosition(core.Vec2)
	PhysicsBody() *Body
}

func hitbox(o Object) core.Box {
	b := o.PhysicsBody()
	return core.Box{Center: o.Position(), W: b.W, H: b.H}
}
