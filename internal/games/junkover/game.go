package junkover

import (
	"io"
	"math"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/junkover/internal/audio"
	"github.com/vovakirdan/junkover/internal/config"
	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/fx"
	"github.com/vovakirdan/junkover/internal/motion"
	"github.com/vovakirdan/junkover/internal/registry"
	"github.com/vovakirdan/junkover/internal/scene"
)

// ID is the registry and score-table identifier of the scene.
const ID = "junkover"

// World extent drawn on screen. The playfield clamp sits inside it.
const (
	worldMinX = -512.0
	worldMaxX = 512.0
	worldMinY = -384.0
	worldMaxY = 384.0
)

// Options are host settings applied on the next Reset.
type Options struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	Audio      audio.Player
	Logger     *log.Logger
}

var (
	optMu   sync.Mutex
	options Options
)

// SetOptions sets the host options used by games created afterwards.
func SetOptions(o Options) {
	optMu.Lock()
	defer optMu.Unlock()
	options = o
}

func currentOptions() Options {
	optMu.Lock()
	defer optMu.Unlock()
	return options
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

type star struct {
	pos   core.Vec2
	glyph rune
}

// Game adapts the rules Controller to the platform. It keeps exactly one
// live Controller and swaps it for a fresh one when the old one asks.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.JunkoverConfig
	opts    Options
	log     *log.Logger

	tilt    *motion.KeyTilt
	emitter *fx.Emitter
	stars   []star

	current    *Controller
	generation int64
}

// New creates an unstarted game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Junkover"
}

// Reset loads configuration and starts a fresh scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.opts = currentOptions()

	g.log = g.opts.Logger
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	cfg, err := config.Load(g.opts.ConfigPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultJunkoverConfig()
	}
	config.ApplyPreset(&cfg, g.opts.Difficulty)
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a fresh scene from an already loaded config.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.JunkoverConfig) {
	if g.current != nil {
		g.current.Teardown()
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.opts.Audio == nil {
		g.opts.Audio = audio.Silent{}
	}

	g.runtime = runtime
	g.cfg = cfg
	g.generation = 0
	g.tilt = motion.NewKeyTilt(cfg.Motion.KeyStep, cfg.KeyHold())
	g.emitter = fx.NewEmitter(runtime.Seed, core.Bounds{
		MinX: worldMinX, MaxX: worldMaxX, MinY: worldMinY, MaxY: worldMaxY,
	})
	g.stars = makeStars(runtime.Seed, 60)

	g.current = g.newController()
	g.current.Start()
}

func (g *Game) newController() *Controller {
	deps := Deps{
		Sensor:   motion.NewDevice(g.tilt, motion.DefaultInterval),
		Audio:    g.opts.Audio,
		Effects:  g.emitter,
		Director: g,
		Logger:   g.log,
	}
	return NewController(deps, g.cfg, g.runtime.Seed+g.generation)
}

// Replace tears down the running scene and starts a new one in its place.
func (g *Game) Replace() {
	if g.current != nil {
		g.current.Teardown()
	}
	g.emitter.Clear()
	g.tilt.Level()
	g.generation++

	g.current = g.newController()
	g.current.Start()
	g.log.Debug("scene replaced", "run", g.current.RunID())
}

// Steer feeds a keyboard steering event into the tilt source.
func (g *Game) Steer(d motion.Direction) {
	if g.tilt != nil {
		g.tilt.Press(d)
	}
}

// Current returns the live controller.
func (g *Game) Current() *Controller {
	return g.current
}

// Step advances the scene by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.current == nil {
		return core.StepResult{}
	}
	dt := g.runtime.TickDuration()
	g.current.Frame(dt)
	g.emitter.Step(dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	c := g.current
	if c == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    c.Score(),
		GameOver: c.State() == StateGameOver,
		Cause:    c.Cause(),
		RunID:    c.RunID(),
	}
}

// Close tears down the running scene.
func (g *Game) Close() {
	if g.current != nil {
		g.current.Teardown()
	}
}

func makeStars(seed int64, n int) []star {
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	glyphs := []rune{'.', '.', '.', '·', '+'}
	out := make([]star, n)
	for i := range out {
		out[i] = star{
			pos: core.Vec2{
				X: worldMinX + rng.Float64()*(worldMaxX-worldMinX),
				Y: worldMinY + rng.Float64()*(worldMaxY-worldMinY),
			},
			glyph: glyphs[rng.Intn(len(glyphs))],
		}
	}
	return out
}

// toScreen maps a world point to a cell. Y grows upward in the world and
// downward on screen.
func toScreen(p core.Vec2, w, h int) (int, int) {
	x := (p.X - worldMinX) / (worldMaxX - worldMinX) * float64(w)
	y := (worldMaxY - p.Y) / (worldMaxY - worldMinY) * float64(h)
	return int(math.Floor(x)), int(math.Floor(y))
}

// cellSize maps a world size to a cell count, at least one cell per axis.
func cellSize(sw, sh float64, w, h int) (int, int) {
	cw := int(math.Round(sw / (worldMaxX - worldMinX) * float64(w)))
	ch := int(math.Round(sh / (worldMaxY - worldMinY) * float64(h)))
	return max(cw, 1), max(ch, 1)
}

// Render draws the scene into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.current == nil {
		return
	}
	w, h := dst.Width(), dst.Height()

	nodes := g.current.Graph().Children()
	var overlay bool
	for _, n := range nodes {
		if n.Name == NodeBackground {
			g.drawStars(dst)
		}
	}

	for _, p := range g.emitter.Particles() {
		x, y := toScreen(p.Pos, w, h)
		switch p.Effect {
		case fx.SpaceDust:
			dst.SetColored(x, y, '.', core.ColorGray)
		case fx.Explosion:
			dst.SetColored(x, y, '*', explosionColor(p.Fade()))
		}
	}

	for _, n := range nodes {
		switch {
		case n.Kind == scene.KindSprite && n.Name == NodeGameOver:
			overlay = true
		case n.Kind == scene.KindSprite && n.Body != nil:
			g.drawSprite(dst, n)
		}
	}

	for _, n := range nodes {
		if n.Kind == scene.KindLabel {
			x, y := toScreen(n.Pos, w, h)
			dst.DrawTextColored(max(x, 1), max(y, 0), n.Text, core.ColorBrightWhite)
		}
	}

	if overlay {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawStars(dst *core.Screen) {
	for _, s := range g.stars {
		x, y := toScreen(s.pos, dst.Width(), dst.Height())
		dst.SetColored(x, y, s.glyph, core.ColorDim)
	}
}

func (g *Game) drawSprite(dst *core.Screen, n *scene.Node) {
	glyph, color := g.look(n.Name)
	cw, ch := cellSize(n.Body.W, n.Body.H, dst.Width(), dst.Height())
	cx, cy := toScreen(n.Pos, dst.Width(), dst.Height())
	x0, y0 := cx-cw/2, cy-ch/2
	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			dst.SetColored(x0+dx, y0+dy, glyph, color)
		}
	}
}

func (g *Game) look(name string) (rune, core.Color) {
	if name == NodePlayer {
		return firstRune(g.cfg.Player.Glyph, '>'), core.ColorBrightCyan
	}
	glyph := firstRune(g.cfg.Entities.Glyphs[name], '?')
	kind, _ := g.current.classifier.Classify(name)
	switch kind {
	case KindBonus:
		return glyph, core.ColorBrightYellow
	case KindObstacle:
		return glyph, core.ColorRed
	default:
		return glyph, core.ColorWhite
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

func explosionColor(fade float64) core.Color {
	switch {
	case fade < 0.3:
		return core.ColorBrightYellow
	case fade < 0.6:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{
		"G A M E   O V E R",
		"",
		"hit by " + g.current.Cause(),
	}
	boxW := 27
	boxH := len(lines) + 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(x, y, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(x, y, boxW, boxH))
	for i, line := range lines {
		lx := x + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(lx, y+2+i, line, core.ColorBrightRed)
	}
}
