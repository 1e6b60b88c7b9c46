package document

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDebounce coalesces settings edits before a preview re-render
const DefaultDebounce = 100 * time.Millisecond

// Debouncer runs the most recently triggered function once no trigger has
// arrived for the delay. Earlier pending functions are dropped.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing anything still pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	stopped := d.stopped
	d.mu.Unlock()

	if fn != nil && !stopped {
		fn()
	}
}

// Stop drops the pending function and ignores later triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Token identifies one async request issued by a Generation
type Token uint64

// Generation discards late results: every new request takes a token and
// only the holder of the latest token may apply its result. IsCurrent alone
// is racy; callers compare and apply under the same lock that guards the
// result.
type Generation struct {
	n atomic.Uint64
}

// Next issues a token and makes all earlier tokens stale.
func (g *Generation) Next() Token {
	return Token(g.n.Add(1))
}

// Invalidate makes every issued token stale, e.g. when the owner goes away.
func (g *Generation) Invalidate() {
	g.n.Add(1)
}

// IsCurrent reports whether t is the latest token.
func (g *Generation) IsCurrent(t Token) bool {
	return uint64(t) == g.n.Load()
}
