package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Engine plays cues on the system speaker through a single mixer.
type Engine struct {
	cfg    Config
	rate   beep.SampleRate
	logger *log.Logger

	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[Cue]*beep.Ctrl
	initialized bool
}

// NewEngine creates an engine; call Init before playing anything.
func NewEngine(cfg Config, logger *log.Logger) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Engine{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		logger: logger,
		mixer:  &beep.Mixer{},
		loops:  make(map[Cue]*beep.Ctrl),
	}
}

// Init opens the speaker and starts the mixer.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(withVolume(e.mixer, e.cfg.Volume))
	e.initialized = true
	return nil
}

// Play implements Player.
func (e *Engine) Play(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	s := synthesize(c, e.rate)
	if s == nil {
		e.logger.Warn("unknown audio cue", "cue", c)
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// Loop implements Player.
func (e *Engine) Loop(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	if ctrl, ok := e.loops[c]; ok && !ctrl.Paused {
		return
	}
	s := synthesize(c, e.rate)
	if s == nil {
		e.logger.Warn("unknown audio cue", "cue", c)
		return
	}
	ctrl := &beep.Ctrl{Streamer: s}
	e.loops[c] = ctrl
	speaker.Lock()
	e.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop implements Player.
func (e *Engine) Stop(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctrl, ok := e.loops[c]
	if !ok {
		return
	}
	delete(e.loops, c)
	if e.initialized {
		speaker.Lock()
		ctrl.Paused = true
		ctrl.Streamer = nil
		speaker.Unlock()
	}
}

// Close silences everything and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	clear(e.loops)
	e.initialized = false
}

// Open returns a working Player for cfg. Disabled audio, or a speaker that
// fails to open, yields Silent along with a close func that does nothing.
func Open(cfg Config, logger *log.Logger) (Player, func()) {
	if !cfg.Enabled {
		return Silent{}, func() {}
	}
	e := NewEngine(cfg, logger)
	if err := e.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return Silent{}, func() {}
	}
	return e, e.Close
}
