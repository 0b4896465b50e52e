package junkover

import "github.com/vovakirdan/junkover/internal/physics"

// Physics categories. Each is a single bit.
const (
	CategoryPlayer physics.Category = 0x1
	CategoryJunk   physics.Category = 0x2
	CategoryBonus  physics.Category = 0x4
)

// Kind is the rules-level classification of a non-player entity.
type Kind int

const (
	KindUnknown Kind = iota
	KindObstacle
	KindBonus
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Masks is the category wiring of one kind of body.
type Masks struct {
	Category  physics.Category
	Contact   physics.Category
	Collision physics.Category
}

// PlayerMasks returns the player's wiring: it hears everything and is only
// pushed by junk.
func PlayerMasks() Masks {
	return Masks{
		Category:  CategoryPlayer,
		Contact:   CategoryPlayer | CategoryJunk | CategoryBonus,
		Collision: CategoryJunk,
	}
}

// MasksFor returns the wiring for a spawned entity of kind k.
func MasksFor(k Kind) Masks {
	switch k {
	case KindObstacle:
		return Masks{
			Category:  CategoryJunk,
			Contact:   CategoryPlayer | CategoryJunk | CategoryBonus,
			Collision: CategoryPlayer | CategoryJunk | CategoryBonus,
		}
	case KindBonus:
		return Masks{
			Category:  CategoryBonus,
			Contact:   CategoryPlayer | CategoryJunk | CategoryBonus,
			Collision: CategoryJunk | CategoryBonus,
		}
	default:
		return Masks{}
	}
}

// Body builds a physics body carrying these masks.
func (m Masks) Body(w, h float64) *physics.Body {
	return &physics.Body{
		Category:      m.Category,
		ContactMask:   m.Contact,
		CollisionMask: m.Collision,
		W:             w,
		H:             h,
	}
}

// Classifier maps entity names to kinds using the two disjoint name sets.
type Classifier struct {
	enemies map[string]struct{}
	bonuses map[string]struct{}
}

// NewClassifier builds a classifier. The sets are assumed disjoint; the
// config layer enforces that.
func NewClassifier(enemies, bonuses []string) *Classifier {
	c := &Classifier{
		enemies: make(map[string]struct{}, len(enemies)),
		bonuses: make(map[string]struct{}, len(bonuses)),
	}
	for _, n := range enemies {
		c.enemies[n] = struct{}{}
	}
	for _, n := range bonuses {
		c.bonuses[n] = struct{}{}
	}
	return c
}

// Classify returns the kind of the named entity. The second result is false
// for an empty name or a name outside both sets.
func (c *Classifier) Classify(name string) (Kind, bool) {
	if name == "" {
		return KindUnknown, false
	}
	if _, ok := c.bonuses[name]; ok {
		return KindBonus, true
	}
	if _, ok := c.enemies[name]; ok {
		return KindObstacle, true
	}
	return KindUnknown, false
}
