// Package motion supplies tilt samples to the scene.
//
// A Source is polled in the background by a Poller, which publishes each
// reading into a Cache. The frame loop only ever reads the Cache, so it never
// blocks on the source. No sample yet means "no input this frame".
package motion

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Sample is one accelerometer reading in g units.
// AX is the device's x axis and AY its y axis, in device orientation.
type Sample struct {
	AX, AY float64
	At     time.Time
}

// Source produces readings on demand. ok is false when nothing is available.
type Source interface {
	Read() (s Sample, ok bool)
}

// Cache holds the most recent sample. Safe for one writer and many readers.
type Cache struct {
	latest atomic.Pointer[Sample]
}

// Store publishes s as the latest sample.
func (c *Cache) Store(s Sample) {
	c.latest.Store(&s)
}

// Latest returns the most recent sample, if any was stored.
func (c *Cache) Latest() (Sample, bool) {
	p := c.latest.Load()
	if p == nil {
		return Sample{}, false
	}
	return *p, true
}

// Reset forgets the stored sample.
func (c *Cache) Reset() {
	c.latest.Store(nil)
}

// DefaultInterval is the polling period used when none is configured.
const DefaultInterval = time.Second / 60

// Poller reads a Source at a fixed interval into a Cache.
type Poller struct {
	src      Source
	cache    *Cache
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller creates a stopped poller.
func NewPoller(src Source, cache *Cache, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{src: src, cache: cache, interval: interval}
}

// Start begins polling until ctx is cancelled or Stop is called.
// Starting a running poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx, p.done)
}

func (p *Poller) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

func (p *Poller) poll() {
	if s, ok := p.src.Read(); ok {
		p.cache.Store(s)
	}
}

// Stop halts polling and waits for the polling goroutine to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the poller goroutine is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
