package junkover

import "math/rand"

// SpawnCursor alternates between an obstacle turn and a bonus turn, picking
// a random name within each turn.
type SpawnCursor struct {
	enemies []string
	bonuses []string
	index   int
	rng     *rand.Rand
}

// NewSpawnCursor creates a cursor starting on an obstacle turn.
func NewSpawnCursor(enemies, bonuses []string, rng *rand.Rand) *SpawnCursor {
	return &SpawnCursor{
		enemies: enemies,
		bonuses: bonuses,
		rng:     rng,
	}
}

// Next draws the next entity name.
// The index wraps to 0 once it reaches the combined set size, so with
// unequal sets a wrap can produce two obstacle turns in a row.
func (c *SpawnCursor) Next() (string, Kind) {
	if c.index >= len(c.enemies)+len(c.bonuses) {
		c.index = 0
	}

	var name string
	var kind Kind
	if c.index%2 == 0 {
		name, kind = c.enemies[c.rng.Intn(len(c.enemies))], KindObstacle
	} else {
		name, kind = c.bonuses[c.rng.Intn(len(c.bonuses))], KindBonus
	}
	c.index++
	return name, kind
}

// Index returns the cursor position the next draw will start from.
func (c *SpawnCursor) Index() int {
	return c.index
}
