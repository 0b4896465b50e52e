package config

import (
	_ "embed"
)

//go:embed defaults/junkover.yaml
var defaultJunkoverYAML []byte

// DefaultJunkoverConfig returns the default junkover configuration.
func DefaultJunkoverConfig() JunkoverConfig {
	return JunkoverConfig{
		Playfield: PlayfieldConfig{
			MinX:    -500,
			MaxX:    500,
			MinY:    -340,
			MaxY:    340,
			RemoveX: -700,
		},
		Spawn: SpawnConfig{
			IntervalSeconds: 0.35,
			StartX:          1200,
			MinY:            -350,
			MaxY:            350,
			VelocityX:       -500,
			LinearDamping:   0,
		},
		Motion: MotionConfig{
			Gain:           100,
			StillThreshold: 2,
			KeyStep:        0.05,
			HoldMillis:     150,
		},
		Entities: EntitiesConfig{
			Enemies: []string{"space-junk", "asteroid", "enemy-ship"},
			Bonuses: []string{"star", "energy"},
			Sizes: map[string]Size{
				"space-junk": {W: 64, H: 64},
				"asteroid":   {W: 80, H: 64},
				"enemy-ship": {W: 72, H: 48},
				"star":       {W: 40, H: 40},
				"energy":     {W: 40, H: 40},
			},
			Glyphs: map[string]string{
				"space-junk": "#",
				"asteroid":   "@",
				"enemy-ship": "<",
				"star":       "*",
				"energy":     "+",
			},
		},
		Player: PlayerConfig{
			StartX:         -400,
			StartY:         0,
			Size:           Size{W: 64, H: 48},
			Density:        0.7,
			AngularDamping: 0.25,
			Glyph:          ">",
		},
		GameOver: GameOverConfig{
			DelaySeconds: 2.0,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultJunkoverYAML
}
