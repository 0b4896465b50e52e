// Package audio plays the scene's music and sound cues through beep.
// All cues are synthesized, so the game ships without audio assets.
package audio

// Cue identifies a piece of audio the scene can request.
type Cue string

const (
	MusicBackground Cue = "cyborg-ninja"
	SFXExplosion    Cue = "explosion.wav"
	SFXCollect      Cue = "collect"
)

// Player is the audio surface the scene talks to.
type Player interface {
	// Play starts a one-shot cue.
	Play(c Cue)
	// Loop starts a cue that repeats until stopped. Looping an already
	// playing cue does nothing.
	Loop(c Cue)
	// Stop silences a looping cue.
	Stop(c Cue)
}

// Silent is a Player that discards every request.
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Loop(Cue) {}
func (Silent) Stop(Cue) {}

// Config controls the audio engine.
type Config struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DefaultConfig returns audio settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     0.6,
		SampleRate: 44100,
	}
}
