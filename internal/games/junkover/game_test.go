package junkover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/junkover/internal/config"
	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/motion"
	"github.com/vovakirdan/junkover/internal/registry"
	"github.com/vovakirdan/junkover/internal/scene"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, config.DefaultJunkoverConfig())
	t.Cleanup(g.Close)
	return g
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists(ID))
	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "Junkover", g.Title())
}

func TestGameOverReplacesScene(t *testing.T) {
	g := newGame(t)
	old := g.Current()
	oldRun := g.State().RunID

	old.Graph().Add(&scene.Node{
		Name: "asteroid",
		Kind: scene.KindSprite,
		Pos:  old.Player().Pos,
		Body: MasksFor(KindObstacle).Body(80, 64),
	})

	res := g.Step(core.NewInputFrame())
	require.True(t, res.State.GameOver)
	assert.Equal(t, "asteroid", res.State.Cause)
	assert.Equal(t, oldRun, res.State.RunID)

	// The replacement is due 2s after the hit.
	for i := 0; i < 119; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Same(t, old, g.Current(), "still inside the delay")

	for i := 0; i < 5 && g.Current() == old; i++ {
		g.Step(core.NewInputFrame())
	}
	require.NotSame(t, old, g.Current())

	assert.Equal(t, StateTornDown, old.State())
	assert.Equal(t, StatePlaying, g.Current().State())
	assert.NotEqual(t, oldRun, g.State().RunID)
	assert.False(t, g.State().GameOver)

	frozen := old.Graph().Len()
	score := old.Score()
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, frozen, old.Graph().Len(), "old scene receives no updates")
	assert.Equal(t, score, old.Score())
	assert.Zero(t, old.Pending())
}

func TestSteerMovesPlayer(t *testing.T) {
	g := newGame(t)
	tilt := motion.NewKeyTilt(0.05, 0)
	g.tilt = tilt

	// Drive the controller directly from the tilt source.
	c := NewController(Deps{Sensor: staticSensor{tilt}}, g.cfg, 1)
	c.Start()
	defer c.Teardown()

	g.Steer(motion.DirRight)
	c.Frame(0)
	assert.InDelta(t, -395.0, c.Player().Pos.X, 1e-9)

	g.Steer(motion.DirUp)
	c.Frame(0)
	assert.InDelta(t, 5.0, c.Player().Pos.Y, 1e-9)
}

// staticSensor reads its source synchronously.
type staticSensor struct{ src motion.Source }

func (staticSensor) Start()                          {}
func (staticSensor) Stop()                           {}
func (s staticSensor) Latest() (motion.Sample, bool) { return s.src.Read() }

func TestRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "SCORE: 0")
	assert.Contains(t, out, ">", "player glyph drawn")

	px, py := toScreen(g.Current().Player().Pos, 80, 24)
	assert.Equal(t, '>', screen.GetCell(px, py).Rune)
	assert.Equal(t, core.ColorBrightCyan, screen.GetCell(px, py).Color)

	g.Current().Graph().Add(&scene.Node{
		Name: "space-junk",
		Kind: scene.KindSprite,
		Pos:  g.Current().Player().Pos,
		Body: MasksFor(KindObstacle).Body(64, 64),
	})
	g.Step(core.NewInputFrame())
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "G A M E   O V E R")
	assert.Contains(t, out, "hit by space-junk")
	assert.False(t, strings.Contains(out, ">"), "player no longer drawn")
}

func TestToScreenCorners(t *testing.T) {
	x, y := toScreen(core.Vec2{X: -512, Y: 384}, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = toScreen(core.Vec2{X: 0, Y: 0}, 80, 24)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)
}
