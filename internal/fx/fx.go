// Package fx runs the scene's particle effects: one-shot bursts and
// continuous ambient fields. Particles are cosmetic and never collide.
package fx

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/junkover/internal/core"
)

// Effect names understood by the emitter.
const (
	Explosion = "Explosion"
	SpaceDust = "SpaceDust"
)

// Particle is one live particle.
type Particle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Age    time.Duration
	Life   time.Duration
	Effect string
}

// Fade returns how far through its life the particle is, from 0 to 1.
func (p Particle) Fade() float64 {
	if p.Life <= 0 {
		return 1
	}
	return math.Min(1, float64(p.Age)/float64(p.Life))
}

type ambient struct {
	name  string
	every time.Duration
	acc   time.Duration
}

// Emitter owns all particles of a scene.
type Emitter struct {
	rng       *rand.Rand
	field     core.Bounds
	particles []Particle
	ambients  []*ambient
}

// NewEmitter creates an emitter whose ambient effects fill field.
func NewEmitter(seed int64, field core.Bounds) *Emitter {
	return &Emitter{
		rng:   rand.New(rand.NewSource(seed)),
		field: field,
	}
}

// Burst emits a one-shot effect at pos. Unknown names emit nothing.
func (e *Emitter) Burst(name string, pos core.Vec2) {
	switch name {
	case Explosion:
		for i := 0; i < 24; i++ {
			angle := e.rng.Float64() * 2 * math.Pi
			speed := 150 + e.rng.Float64()*250
			e.particles = append(e.particles, Particle{
				Pos:    pos,
				Vel:    core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
				Life:   time.Duration(500+e.rng.Intn(300)) * time.Millisecond,
				Effect: name,
			})
		}
	}
}

// Ambient starts a continuous effect and pre-advances it by warmup so the
// field is already populated on the first frame.
func (e *Emitter) Ambient(name string, warmup time.Duration) {
	switch name {
	case SpaceDust:
		e.ambients = append(e.ambients, &ambient{name: name, every: 40 * time.Millisecond})
	default:
		return
	}
	const slice = 100 * time.Millisecond
	for warmup > 0 {
		d := min(slice, warmup)
		e.Step(d)
		warmup -= d
	}
}

func (e *Emitter) spawnDust() {
	e.particles = append(e.particles, Particle{
		Pos: core.Vec2{
			X: e.field.MaxX,
			Y: e.field.MinY + e.rng.Float64()*(e.field.MaxY-e.field.MinY),
		},
		Vel:    core.Vec2{X: -(200 + e.rng.Float64()*300)},
		Life:   10 * time.Second,
		Effect: SpaceDust,
	})
}

// Step ages and moves every particle and runs ambient effects.
func (e *Emitter) Step(dt time.Duration) {
	for _, a := range e.ambients {
		a.acc += dt
		for a.acc >= a.every {
			a.acc -= a.every
			e.spawnDust()
		}
	}

	secs := dt.Seconds()
	live := e.particles[:0]
	for _, p := range e.particles {
		p.Age += dt
		p.Pos = p.Pos.Add(p.Vel.Scale(secs))
		if p.Age >= p.Life || p.Pos.X < e.field.MinX {
			continue
		}
		live = append(live, p)
	}
	e.particles = live
}

// Particles returns the live particles. The slice is owned by the emitter.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Count returns live particles of the named effect.
func (e *Emitter) Count(name string) int {
	n := 0
	for _, p := range e.particles {
		if p.Effect == name {
			n++
		}
	}
	return n
}

// Clear drops every particle and ambient effect.
func (e *Emitter) Clear() {
	e.particles = e.particles[:0]
	e.ambients = nil
}
