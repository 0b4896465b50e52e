package motion

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// static always reports the same reading.
type static Sample

func (s static) Read() (Sample, bool) {
	out := Sample(s)
	out.At = time.Now()
	return out, true
}

type sourceFunc func() (Sample, bool)

func (f sourceFunc) Read() (Sample, bool) { return f() }

func TestCacheEmptyIsNotAnError(t *testing.T) {
	var c Cache
	_, ok := c.Latest()
	assert.False(t, ok)

	c.Store(Sample{AX: 0.03})
	s, ok := c.Latest()
	require.True(t, ok)
	assert.Equal(t, 0.03, s.AX)

	c.Reset()
	_, ok = c.Latest()
	assert.False(t, ok)
}

func TestPollerFillsCache(t *testing.T) {
	var c Cache
	p := NewPoller(static{AX: 0.1, AY: -0.2}, &c, time.Millisecond)
	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool {
		_, ok := c.Latest()
		return ok
	}, time.Second, time.Millisecond)

	s, _ := c.Latest()
	assert.Equal(t, 0.1, s.AX)
	assert.Equal(t, -0.2, s.AY)
}

func TestPollerStopHaltsReads(t *testing.T) {
	var reads atomic.Int64
	src := sourceFunc(func() (Sample, bool) {
		reads.Add(1)
		return Sample{}, false
	})

	var c Cache
	p := NewPoller(src, &c, time.Millisecond)
	p.Start(context.Background())
	p.Start(context.Background()) // no second goroutine
	require.Eventually(t, func() bool { return reads.Load() > 2 }, time.Second, time.Millisecond)

	p.Stop()
	assert.False(t, p.Running())
	after := reads.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, reads.Load(), "no reads after Stop returns")

	_, ok := c.Latest()
	assert.False(t, ok, "unavailable readings are never cached")

	p.Stop() // idempotent
}

func TestPollerRestart(t *testing.T) {
	d := NewDevice(static{AY: 0.5}, time.Millisecond)
	d.Start()
	require.Eventually(t, func() bool { _, ok := d.Latest(); return ok }, time.Second, time.Millisecond)
	d.Stop()

	d.Start()
	defer d.Stop()
	require.Eventually(t, func() bool { _, ok := d.Latest(); return ok }, time.Second, time.Millisecond)
}

func TestKeyTiltMapping(t *testing.T) {
	now := time.Unix(0, 0)
	k := NewKeyTilt(0, 0)
	k.now = func() time.Time { return now }

	s, ok := k.Read()
	require.True(t, ok)
	assert.Zero(t, s.AX)
	assert.Zero(t, s.AY)

	k.Press(DirRight)
	k.Press(DirUp)
	s, _ = k.Read()
	assert.Equal(t, -DefaultKeyStep, s.AY, "right tilts AY negative")
	assert.Equal(t, DefaultKeyStep, s.AX, "up tilts AX positive")

	k.Press(DirLeft)
	s, _ = k.Read()
	assert.Equal(t, DefaultKeyStep, s.AY)

	now = now.Add(DefaultKeyHold + time.Millisecond)
	s, _ = k.Read()
	assert.Zero(t, s.AX, "tilt returns to level after the hold window")
	assert.Zero(t, s.AY)
}

func TestKeyTiltAxesHoldIndependently(t *testing.T) {
	now := time.Unix(0, 0)
	k := NewKeyTilt(0.02, 100*time.Millisecond)
	k.now = func() time.Time { return now }

	k.Press(DirDown)
	now = now.Add(80 * time.Millisecond)
	k.Press(DirRight)
	now = now.Add(40 * time.Millisecond)

	s, _ := k.Read()
	assert.Zero(t, s.AX, "down was pressed 120ms ago")
	assert.Equal(t, -0.02, s.AY, "right was pressed 40ms ago")

	k.Level()
	s, _ = k.Read()
	assert.Zero(t, s.AY)
}
