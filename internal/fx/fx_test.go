package fx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/junkover/internal/core"
)

var field = core.Bounds{MinX: -512, MaxX: 512, MinY: -384, MaxY: 384}

func TestExplosionBurstFades(t *testing.T) {
	e := NewEmitter(1, field)
	e.Burst(Explosion, core.Vec2{X: -400, Y: 20})
	assert.Equal(t, 24, e.Count(Explosion))

	e.Step(100 * time.Millisecond)
	assert.Equal(t, 24, e.Count(Explosion))
	for _, p := range e.Particles() {
		assert.Greater(t, p.Fade(), 0.0)
		assert.Less(t, p.Fade(), 1.0)
	}

	e.Step(time.Second)
	assert.Zero(t, e.Count(Explosion), "all explosion particles expire within a second")
}

func TestUnknownBurstEmitsNothing(t *testing.T) {
	e := NewEmitter(1, field)
	e.Burst("Confetti", core.Vec2{})
	e.Ambient("Rain", time.Second)
	assert.Empty(t, e.Particles())
}

func TestSpaceDustWarmup(t *testing.T) {
	e := NewEmitter(7, field)
	e.Ambient(SpaceDust, 10*time.Second)

	n := e.Count(SpaceDust)
	assert.Greater(t, n, 0, "warmup populates the field")

	spread := false
	for _, p := range e.Particles() {
		assert.True(t, p.Pos.X >= field.MinX && p.Pos.X <= field.MaxX)
		if p.Pos.X < 0 {
			spread = true
		}
	}
	assert.True(t, spread, "dust has crossed to the left half")
}

func TestEmitterDeterministic(t *testing.T) {
	a := NewEmitter(42, field)
	b := NewEmitter(42, field)
	for _, e := range []*Emitter{a, b} {
		e.Ambient(SpaceDust, time.Second)
		e.Burst(Explosion, core.Vec2{})
		e.Step(50 * time.Millisecond)
	}
	assert.Equal(t, a.Particles(), b.Particles())
}

func TestClear(t *testing.T) {
	e := NewEmitter(1, field)
	e.Ambient(SpaceDust, time.Second)
	e.Clear()
	e.Step(time.Second)
	assert.Empty(t, e.Particles())
}
