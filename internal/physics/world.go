package physics

import (
	"time"
)

// Contact is a begin-contact notification between two objects.
type Contact struct {
	A, B Object
}

// Other returns the participant that is not self, or nil when self is neither.
func (c Contact) Other(self Object) Object {
	switch {
	case c.A != nil && self != nil && c.A.Key() == self.Key():
		return c.B
	case c.B != nil && self != nil && c.B.Key() == self.Key():
		return c.A
	default:
		return nil
	}
}

// Involves reports whether self is one of the participants.
func (c Contact) Involves(self Object) bool {
	if self == nil {
		return false
	}
	return (c.A != nil && c.A.Key() == self.Key()) || (c.B != nil && c.B.Key() == self.Key())
}

type pair struct {
	lo, hi uint64
}

func makePair(a, b uint64) pair {
	if a > b {
		a, b = b, a
	}
	return pair{lo: a, hi: b}
}

// World tracks which pairs are touching so a contact is reported only on the
// step where the overlap begins.
type World struct {
	touching map[pair]struct{}
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{touching: make(map[pair]struct{})}
}

// Step integrates velocities over dt, then returns the contacts that began
// during this step, in the order objects were given.
func (w *World) Step(objs []Object, dt time.Duration) []Contact {
	secs := dt.Seconds()
	for _, o := range objs {
		b := o.PhysicsBody()
		if b == nil {
			continue
		}
		if b.LinearDamping > 0 {
			b.Velocity = b.Velocity.Scale(1 / (1 + b.LinearDamping*secs))
		}
		o.SetPosition(o.Position().Add(b.Velocity.Scale(secs)))
	}

	var contacts []Contact
	now := make(map[pair]struct{}, len(w.touching))

	for i := 0; i < len(objs); i++ {
		a := objs[i]
		ab := a.PhysicsBody()
		if ab == nil {
			continue
		}
		for j := i + 1; j < len(objs); j++ {
			b := objs[j]
			bb := b.PhysicsBody()
			if bb == nil || !hitbox(a).Overlaps(hitbox(b)) {
				continue
			}

			key := makePair(a.Key(), b.Key())
			now[key] = struct{}{}
			if _, seen := w.touching[key]; seen {
				continue
			}

			respond(ab, bb)
			if ab.NotifiesWith(bb) {
				contacts = append(contacts, Contact{A: a, B: b})
			}
		}
	}

	w.touching = now
	return contacts
}

// respond exchanges velocities between two equal-mass bodies, each side only
// if its collision mask includes the other.
func respond(a, b *Body) {
	va, vb := a.Velocity, b.Velocity
	if a.RespondsTo(b) {
		a.Velocity = vb
	}
	if b.RespondsTo(a) {
		b.Velocity = va
	}
}

// Reset forgets all touching pairs.
func (w *World) Reset() {
	clear(w.touching)
}
