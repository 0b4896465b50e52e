package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveNoise
)

// tone is a fixed-length oscillator.
type tone struct {
	freq   float64
	phase  float64
	left   int
	wave   wave
	rate   beep.SampleRate
	noise  *rand.Rand
	decay  float64 // exponential decay per second, 0 for none
	played int
}

func newTone(freq float64, d time.Duration, w wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, left: rate.N(d), wave: w, rate: rate, noise: rand.New(rand.NewSource(1))}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.left <= 0 {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case waveNoise:
			v = o.noise.Float64()*2 - 1
		}
		if o.decay > 0 {
			v *= math.Exp(-o.decay * float64(o.played) / float64(o.rate))
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.left--
		o.played++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// bassline is an endless arpeggio used as the background track.
type bassline struct {
	rate  beep.SampleRate
	notes []float64
	step  int // samples per note
	pos   int
}

func newBassline(rate beep.SampleRate) *bassline {
	return &bassline{
		rate:  rate,
		notes: []float64{55, 55, 82.41, 65.41, 55, 73.42, 82.41, 98},
		step:  rate.N(220 * time.Millisecond),
	}
}

func (b *bassline) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := b.notes[(b.pos/b.step)%len(b.notes)]
		inNote := float64(b.pos%b.step) / float64(b.step)
		t := float64(b.pos) / float64(b.rate)

		env := math.Exp(-inNote * 3)
		v := 0.5*math.Sin(2*math.Pi*note*t) + 0.2*math.Sin(2*math.Pi*note*2*t)
		v *= env * 0.6

		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bassline) Err() error { return nil }

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// synthesize builds a fresh streamer for c, or nil for an unknown cue.
func synthesize(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case MusicBackground:
		return withVolume(newBassline(rate), 0.5)
	case SFXExplosion:
		noise := newTone(0, 900*time.Millisecond, waveNoise, rate)
		noise.decay = 5
		rumble := newTone(60, 900*time.Millisecond, waveSine, rate)
		rumble.decay = 3
		return beep.Mix(withVolume(noise, 0.7), withVolume(rumble, 0.5))
	case SFXCollect:
		return beep.Seq(
			withVolume(newTone(987.77, 60*time.Millisecond, waveSquare, rate), 0.25),
			withVolume(newTone(1318.51, 120*time.Millisecond, waveSquare, rate), 0.25),
		)
	default:
		return nil
	}
}
