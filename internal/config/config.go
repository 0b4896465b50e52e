// Package config provides YAML-based configuration loading and difficulty
// management for the junkover scene.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/junkover/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// JunkoverConfig contains all configuration for the junkover scene.
type JunkoverConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Motion     MotionConfig     `yaml:"motion"`
	Entities   EntitiesConfig   `yaml:"entities"`
	Player     PlayerConfig     `yaml:"player"`
	GameOver   GameOverConfig   `yaml:"gameover"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the player clamp rectangle and the reclamation line.
type PlayfieldConfig struct {
	MinX    float64 `yaml:"min_x"`
	MaxX    float64 `yaml:"max_x"`
	MinY    float64 `yaml:"min_y"`
	MaxY    float64 `yaml:"max_y"`
	RemoveX float64 `yaml:"remove_x"` // nodes at or left of this x are removed
}

// SpawnConfig defines where and how often entities enter the field.
type SpawnConfig struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
	StartX          float64 `yaml:"start_x"`
	MinY            int     `yaml:"min_y"` // inclusive
	MaxY            int     `yaml:"max_y"` // inclusive
	VelocityX       float64 `yaml:"velocity_x"`
	LinearDamping   float64 `yaml:"linear_damping"`
}

// MotionConfig defines tilt integration parameters.
type MotionConfig struct {
	Gain           float64 `yaml:"gain"`
	StillThreshold float64 `yaml:"still_threshold"`
	KeyStep        float64 `yaml:"key_step"`
	HoldMillis     int     `yaml:"hold_ms"`
}

// Size is a world-space width and height.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// EntitiesConfig names the obstacle and bonus sets and how each name looks.
type EntitiesConfig struct {
	Enemies []string          `yaml:"enemies"`
	Bonuses []string          `yaml:"bonuses"`
	Sizes   map[string]Size   `yaml:"sizes"`
	Glyphs  map[string]string `yaml:"glyphs"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Size           Size    `yaml:"size"`
	Density        float64 `yaml:"density"`
	AngularDamping float64 `yaml:"angular_damping"`
	Glyph          string  `yaml:"glyph"`
}

// GameOverConfig defines the game-over transition.
type GameOverConfig struct {
	DelaySeconds float64 `yaml:"delay_seconds"`
}

// AudioConfig toggles the synthesized cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Bounds returns the player clamp rectangle.
func (c JunkoverConfig) Bounds() core.Bounds {
	return core.Bounds{
		MinX: c.Playfield.MinX,
		MaxX: c.Playfield.MaxX,
		MinY: c.Playfield.MinY,
		MaxY: c.Playfield.MaxY,
	}
}

// SpawnInterval returns the spawn period.
func (c JunkoverConfig) SpawnInterval() time.Duration {
	return seconds(c.Spawn.IntervalSeconds)
}

// GameOverDelay returns the wait before the scene is replaced.
func (c JunkoverConfig) GameOverDelay() time.Duration {
	return seconds(c.GameOver.DelaySeconds)
}

// KeyHold returns how long a key press keeps the tilt applied.
func (c JunkoverConfig) KeyHold() time.Duration {
	return time.Duration(c.Motion.HoldMillis) * time.Millisecond
}

// SizeOf returns the configured size for an entity name.
func (c JunkoverConfig) SizeOf(name string) (Size, bool) {
	s, ok := c.Entities.Sizes[name]
	return s, ok
}

// MinIntervalFloor is the shortest spawn period Validate accepts.
const MinIntervalFloor = time.Millisecond

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate checks the invariants the scene relies on.
func (c JunkoverConfig) Validate() error {
	if len(c.Entities.Enemies) == 0 {
		return fmt.Errorf("%w: entities.enemies is empty", ErrInvalid)
	}
	if len(c.Entities.Bonuses) == 0 {
		return fmt.Errorf("%w: entities.bonuses is empty", ErrInvalid)
	}

	seen := make(map[string]string)
	for _, set := range []struct {
		field string
		names []string
	}{
		{"enemies", c.Entities.Enemies},
		{"bonuses", c.Entities.Bonuses},
	} {
		for _, name := range set.names {
			if name == "" {
				return fmt.Errorf("%w: entities.%s contains an empty name", ErrInvalid, set.field)
			}
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("%w: %q appears in both %s and %s", ErrInvalid, name, prev, set.field)
			}
			seen[name] = set.field
			s, ok := c.Entities.Sizes[name]
			if !ok || s.W <= 0 || s.H <= 0 {
				return fmt.Errorf("%w: entities.sizes has no size for %q", ErrInvalid, name)
			}
		}
	}

	if c.Playfield.MinX > c.Playfield.MaxX || c.Playfield.MinY > c.Playfield.MaxY {
		return fmt.Errorf("%w: playfield rect is not ordered", ErrInvalid)
	}
	if c.Spawn.MinY > c.Spawn.MaxY {
		return fmt.Errorf("%w: spawn y range is not ordered", ErrInvalid)
	}
	if !(c.Spawn.IntervalSeconds > 0) {
		return fmt.Errorf("%w: spawn.interval_seconds must be positive", ErrInvalid)
	}
	if c.SpawnInterval() < MinIntervalFloor {
		return fmt.Errorf("%w: spawn.interval_seconds is below %v", ErrInvalid, MinIntervalFloor)
	}
	if c.Motion.Gain <= 0 {
		return fmt.Errorf("%w: motion.gain must be positive", ErrInvalid)
	}
	if c.GameOver.DelaySeconds < 0 {
		return fmt.Errorf("%w: gameover.delay_seconds is negative", ErrInvalid)
	}
	if c.Player.Size.W <= 0 || c.Player.Size.H <= 0 {
		return fmt.Errorf("%w: player.size must be positive", ErrInvalid)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *JunkoverConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
