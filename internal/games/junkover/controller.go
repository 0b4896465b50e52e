// Package junkover implements the dodger scene: the player steers by tilt,
// dodges scrolling junk and collects bonuses.
//
// The Controller owns every piece of rules state for one scene instance and
// reaches the host only through the Deps interfaces. Game adapts it to the
// terminal platform and replaces it wholesale after each game over.
package junkover

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/junkover/internal/audio"
	"github.com/vovakirdan/junkover/internal/config"
	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/fx"
	"github.com/vovakirdan/junkover/internal/motion"
	"github.com/vovakirdan/junkover/internal/physics"
	"github.com/vovakirdan/junkover/internal/scene"
	"github.com/vovakirdan/junkover/internal/sched"
)

// Host asset names used by scene nodes.
const (
	NodePlayer     = "player"
	NodeBackground = "background"
	NodeScore      = "score"
	NodeGameOver   = "gameOver-2"
)

// Sensor supplies tilt samples. Latest must not block.
type Sensor interface {
	Start()
	Stop()
	Latest() (motion.Sample, bool)
}

// Effects plays particle effects by name.
type Effects interface {
	Burst(name string, pos core.Vec2)
	Ambient(name string, warmup time.Duration)
}

// Director swaps the running scene for a fresh one.
type Director interface {
	Replace()
}

// Deps are the host collaborators of a Controller. Nil fields are allowed:
// a nil Sensor never reports a sample, a nil Audio is silent, nil Effects
// show nothing and a nil Director leaves the finished scene in place.
type Deps struct {
	Sensor   Sensor
	Audio    audio.Player
	Effects  Effects
	Director Director
	Logger   *log.Logger
}

// State is the lifecycle of a Controller.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateTornDown:
		return "torn down"
	default:
		return "unknown"
	}
}

type noEffects struct{}

func (noEffects) Burst(string, core.Vec2)       {}
func (noEffects) Ambient(string, time.Duration) {}

// Controller runs the rules of one scene instance.
type Controller struct {
	cfg   config.JunkoverConfig
	deps  Deps
	log   *log.Logger
	runID string

	graph      *scene.Graph
	world      *physics.World
	sched      *sched.Scheduler
	rng        *rand.Rand
	cursor     *SpawnCursor
	classifier *Classifier
	difficulty *config.DifficultyManager

	player  *scene.Node
	music   *scene.Node
	label   *scene.Node
	overlay *scene.Node

	spawnTask *sched.Task
	interval  time.Duration

	state State
	score int
	cause string
	ticks int
}

// NewController creates an idle controller. cfg must have passed Validate.
func NewController(deps Deps, cfg config.JunkoverConfig, seed int64) *Controller {
	if deps.Audio == nil {
		deps.Audio = audio.Silent{}
	}
	if deps.Effects == nil {
		deps.Effects = noEffects{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runID := uuid.NewString()
	rng := rand.New(rand.NewSource(seed))
	c := &Controller{
		cfg:        cfg,
		deps:       deps,
		log:        logger.With("run", runID[:8]),
		runID:      runID,
		graph:      scene.NewGraph(),
		world:      physics.NewWorld(),
		sched:      sched.New(),
		rng:        rng,
		cursor:     NewSpawnCursor(cfg.Entities.Enemies, cfg.Entities.Bonuses, rng),
		classifier: NewClassifier(cfg.Entities.Enemies, cfg.Entities.Bonuses),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	return c
}

// Start builds the scene and begins play. Starting twice does nothing.
func (c *Controller) Start() {
	if c.state != StateIdle {
		return
	}
	c.score = 0

	c.music = &scene.Node{Name: string(audio.MusicBackground), Kind: scene.KindAudio}
	c.graph.Add(c.music)
	c.deps.Audio.Loop(audio.MusicBackground)

	c.label = &scene.Node{
		Name: NodeScore,
		Kind: scene.KindLabel,
		Pos:  core.Vec2{X: c.cfg.Playfield.MinX, Y: c.cfg.Playfield.MaxY + 30},
		Z:    2,
	}
	c.graph.Add(c.label)
	c.updateLabel()

	c.graph.Add(&scene.Node{Name: NodeBackground, Kind: scene.KindSprite, Z: -2})

	c.graph.Add(&scene.Node{Name: fx.SpaceDust, Kind: scene.KindEmitter, Z: -1})
	c.deps.Effects.Ambient(fx.SpaceDust, 10*time.Second)

	p := c.cfg.Player
	body := PlayerMasks().Body(p.Size.W, p.Size.H)
	body.AngularDamping = p.AngularDamping
	body.Density = p.Density
	c.player = &scene.Node{
		Name: NodePlayer,
		Kind: scene.KindSprite,
		Pos:  core.Vec2{X: p.StartX, Y: p.StartY},
		Z:    1,
		Body: body,
	}
	c.graph.Add(c.player)

	if c.deps.Sensor != nil {
		c.deps.Sensor.Start()
	}

	c.interval = c.cfg.SpawnInterval()
	c.spawnTask = c.sched.Every(c.interval, c.spawnTick)

	c.state = StatePlaying
	c.log.Debug("scene started")
}

// Frame advances the scene by dt: timers, tilt input, reclamation, then
// physics and the contacts that began during this step.
func (c *Controller) Frame(dt time.Duration) {
	if c.state == StateTornDown || c.state == StateIdle {
		return
	}
	c.ticks++

	c.sched.Advance(dt)
	if c.state == StateTornDown {
		return
	}

	c.applyMotion()
	c.reclaim()

	for _, contact := range c.world.Step(c.graph.Bodies(), dt) {
		c.HandleContact(contact)
		if c.state == StateTornDown {
			return
		}
	}
}

func (c *Controller) applyMotion() {
	if c.deps.Sensor == nil {
		return
	}
	s, ok := c.deps.Sensor.Latest()
	if !ok {
		return
	}

	next, dx, dy := Integrate(c.player.Pos, s, c.cfg.Motion.Gain, c.cfg.Bounds())
	c.player.Pos = next

	if IsStill(dx, dy, c.cfg.Motion.StillThreshold) && c.graph.Contains(c.player.ID) {
		c.addScore(1)
	}
}

// reclaim removes every node that has scrolled past the left edge.
func (c *Controller) reclaim() {
	for _, n := range c.graph.Children() {
		if n.Pos.X <= c.cfg.Playfield.RemoveX {
			c.graph.Remove(n.ID)
		}
	}
}

func (c *Controller) spawnTick() {
	c.Spawn()

	if !c.difficulty.IsEnabled() {
		return
	}
	next := c.difficulty.Interval(c.cfg.SpawnInterval(), c.score, c.ticks)
	if next != c.interval {
		c.spawnTask.Cancel()
		c.interval = next
		c.spawnTask = c.sched.Every(next, c.spawnTick)
	}
}

// Spawn adds exactly one obstacle or bonus at the right edge and returns it.
func (c *Controller) Spawn() *scene.Node {
	name, kind := c.cursor.Next()
	size, _ := c.cfg.SizeOf(name)

	sp := c.cfg.Spawn
	y := sp.MinY + c.rng.Intn(sp.MaxY-sp.MinY+1)

	body := MasksFor(kind).Body(size.W, size.H)
	body.Velocity = core.Vec2{X: c.difficulty.Speed(sp.VelocityX, c.score, c.ticks)}
	body.LinearDamping = sp.LinearDamping

	n := &scene.Node{
		Name: name,
		Kind: scene.KindSprite,
		Pos:  core.Vec2{X: sp.StartX, Y: float64(y)},
		Body: body,
	}
	c.graph.Add(n)
	return n
}

// HandleContact resolves one begin-contact event against the rules.
func (c *Controller) HandleContact(ct physics.Contact) {
	if _, ok := c.resolve(ct.A); !ok {
		c.log.Debug("contact with detached node ignored")
		return
	}
	if _, ok := c.resolve(ct.B); !ok {
		c.log.Debug("contact with detached node ignored")
		return
	}
	if c.player == nil || !ct.Involves(c.player) {
		return
	}
	other, _ := c.resolve(ct.Other(c.player))

	if c.state != StatePlaying {
		return
	}

	kind, ok := c.classifier.Classify(other.Name)
	if !ok {
		c.log.Warn("contact with unclassified node ignored", "name", other.Name, "id", other.ID)
		return
	}

	switch kind {
	case KindBonus:
		c.collect(other)
	case KindObstacle:
		c.hit(other)
	}
}

func (c *Controller) collect(n *scene.Node) {
	c.graph.Remove(n.ID)
	c.addScore(1)
	c.deps.Audio.Play(audio.SFXCollect)
}

func (c *Controller) hit(n *scene.Node) {
	c.log.Debug("hit by", "name", n.Name)

	at := c.player.Pos
	c.graph.Remove(c.player.ID)
	c.graph.Remove(c.music.ID)
	c.deps.Audio.Stop(audio.MusicBackground)
	c.deps.Audio.Play(audio.SFXExplosion)

	c.graph.Add(&scene.Node{Name: fx.Explosion, Kind: scene.KindEmitter, Pos: at})
	c.deps.Effects.Burst(fx.Explosion, at)

	c.overlay = &scene.Node{Name: NodeGameOver, Kind: scene.KindSprite, Z: 3}
	c.graph.Add(c.overlay)

	c.cause = n.Name
	c.state = StateGameOver
	c.log.Info("game over", "score", c.score, "cause", c.cause)

	c.sched.After(c.cfg.GameOverDelay(), c.replace)
}

func (c *Controller) replace() {
	if c.deps.Director == nil {
		return
	}
	c.deps.Director.Replace()
}

func (c *Controller) addScore(n int) {
	c.score += n
	c.updateLabel()
}

func (c *Controller) updateLabel() {
	if c.label != nil {
		c.label.Text = fmt.Sprintf("SCORE: %d", c.score)
	}
}

// Teardown cancels every timer, forgets touching pairs and releases the
// sensor and music.
// It is safe to call more than once.
func (c *Controller) Teardown() {
	if c.state == StateTornDown {
		return
	}
	c.sched.Stop()
	c.world.Reset()
	if c.deps.Sensor != nil && c.state != StateIdle {
		c.deps.Sensor.Stop()
	}
	c.deps.Audio.Stop(audio.MusicBackground)
	c.state = StateTornDown
	c.log.Debug("scene torn down")
}

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Cause returns the name of the obstacle that ended the run, if any.
func (c *Controller) Cause() string { return c.cause }

// RunID identifies this scene instance.
func (c *Controller) RunID() string { return c.runID }

// Player returns the player node. It stays valid after the player is removed.
func (c *Controller) Player() *scene.Node { return c.player }

// Graph returns the scene graph.
func (c *Controller) Graph() *scene.Graph { return c.graph }

// Pending returns the number of live timers.
func (c *Controller) Pending() int { return c.sched.Pending() }
