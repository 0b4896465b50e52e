package motion

import (
	"context"
	"time"
)

// Device bundles a source, its poller and the cache the frame loop reads.
// It is what a scene starts on entry and stops on teardown.
type Device struct {
	cache  Cache
	poller *Poller
}

// NewDevice wires src into a fresh cache polled every interval.
func NewDevice(src Source, interval time.Duration) *Device {
	d := &Device{}
	d.poller = NewPoller(src, &d.cache, interval)
	return d
}

// Start begins background sampling. Stale samples from an earlier run are dropped.
func (d *Device) Start() {
	d.cache.Reset()
	d.poller.Start(context.Background())
}

// Stop ends background sampling.
func (d *Device) Stop() {
	d.poller.Stop()
}

// Latest returns the most recent sample without blocking.
func (d *Device) Latest() (Sample, bool) {
	return d.cache.Latest()
}
