package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Debouncer coalesces rapid writes: each Put captures the serialized value
// and re-arms a single timer, so a burst of mutations lands as one store
// write with the last value winning. Mutations inside the final window are
// lost if the process dies before the timer fires — an accepted trade for
// responsiveness, not a transaction log.
type Debouncer struct {
	store Store
	delay time.Duration

	mu      sync.Mutex
	pending map[string][]byte
	timer   *time.Timer
}

// NewDebouncer wraps a store with a write-coalescing window.
func NewDebouncer(s Store, delay time.Duration) *Debouncer {
	return &Debouncer{
		store:   s,
		delay:   delay,
		pending: make(map[string][]byte),
	}
}

// Put schedules value to be written under key after the debounce window.
// The value is captured now, on the caller's goroutine, so later mutation
// of the caller's state cannot race the flush.
func (d *Debouncer) Put(key string, value []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[key] = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		if err := d.Flush(); err != nil {
			slog.Warn("debounced save failed", "error", err)
		}
	})
}

// Flush writes all pending values immediately. Safe to call with nothing
// pending; used on shutdown and in tests for determinism.
func (d *Debouncer) Flush() error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	batch := d.pending
	d.pending = make(map[string][]byte)
	d.mu.Unlock()

	for key, value := range batch {
		if err := d.store.Set(context.Background(), key, value); err != nil {
			return err
		}
	}
	return nil
}
