package motion

import (
	"sync"
	"time"
)

// Direction is a steering intent from the keyboard.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Default keyboard tilt tuning.
const (
	DefaultKeyStep = 0.05
	DefaultKeyHold = 150 * time.Millisecond
)

// KeyTilt emulates an accelerometer from key presses.
//
// The scene moves the player by x -= AY*gain and y += AX*gain, so
// right sets AY negative, left sets AY positive, up sets AX positive and down
// sets AX negative. Each axis holds its tilt for the hold window after the last
// key event, since terminals deliver held keys as repeats rather than
// press/release pairs.
type KeyTilt struct {
	step float64
	hold time.Duration
	now  func() time.Time

	mu     sync.Mutex
	ax, ay float64
	xAt    time.Time // last AX change
	yAt    time.Time // last AY change
}

// NewKeyTilt creates a keyboard tilt source. Zero values pick the defaults.
func NewKeyTilt(step float64, hold time.Duration) *KeyTilt {
	if step <= 0 {
		step = DefaultKeyStep
	}
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &KeyTilt{step: step, hold: hold, now: time.Now}
}

// Press registers a steering key event.
func (k *KeyTilt) Press(d Direction) {
	k.mu.Lock()
	defer k.mu.Unlock()

	t := k.now()
	switch d {
	case DirUp:
		k.ax, k.xAt = k.step, t
	case DirDown:
		k.ax, k.xAt = -k.step, t
	case DirLeft:
		k.ay, k.yAt = k.step, t
	case DirRight:
		k.ay, k.yAt = -k.step, t
	}
}

// Level drops any held tilt immediately.
func (k *KeyTilt) Level() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.ax, k.ay = 0, 0
}

// Read implements Source. A level device still produces a sample.
func (k *KeyTilt) Read() (Sample, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	t := k.now()
	if t.Sub(k.xAt) > k.hold {
		k.ax = 0
	}
	if t.Sub(k.yAt) > k.hold {
		k.ay = 0
	}
	return Sample{AX: k.ax, AY: k.ay, At: t}, true
}
