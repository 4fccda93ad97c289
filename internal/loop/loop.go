// Package loop provides the frame scheduler that drives a game.
//
// A game arms one frame callback with Request. Whoever owns the clock calls
// Tick: a Bubble Tea tick message, an Ebitengine Update, a time.Ticker in
// Run, or a test calling Tick directly. The callback keeps running on every
// tick until it reports false, after which nothing runs until the next
// Request.
package loop

import (
	"context"
	"time"
)

// FrameFunc runs one frame and reports whether another frame should follow.
type FrameFunc func() bool

// Frames holds the single armed frame callback.
// It is not safe for concurrent use; it belongs to one game's thread.
type Frames struct {
	next  FrameFunc
	gen   uint64
	ticks uint64
}

// NewFrames creates an idle scheduler.
func NewFrames() *Frames {
	return &Frames{}
}

// Request arms fn to run on the next tick, replacing any armed callback.
func (f *Frames) Request(fn func() bool) {
	f.next = fn
	f.gen++
}

// Pending reports whether a callback is armed.
func (f *Frames) Pending() bool {
	return f.next != nil
}

// Ticks returns how many frames have run so far.
func (f *Frames) Ticks() uint64 {
	return f.ticks
}

// Tick runs the armed callback once. The callback is dropped when it
// returns false, unless it re-armed itself while running.
func (f *Frames) Tick() bool {
	if f.next == nil {
		return false
	}
	fn, gen := f.next, f.gen
	f.ticks++
	more := fn()
	if !more && f.gen == gen {
		f.next = nil
	}
	return more
}

// TickN runs up to n ticks and returns how many frames actually ran.
func (f *Frames) TickN(n int) int {
	ran := 0
	for i := 0; i < n && f.Pending(); i++ {
		f.Tick()
		ran++
	}
	return ran
}

// Run drives Tick from a real-time clock at rate frames per second until
// nothing is armed or ctx ends. A rate of zero or less runs frames back to
// back, which is what headless simulations want.
func Run(ctx context.Context, f *Frames, rate int) error {
	if rate <= 0 {
		for f.Pending() {
			if err := ctx.Err(); err != nil {
				return err
			}
			f.Tick()
		}
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for f.Pending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			f.Tick()
		}
	}
	return nil
}
