package loop

import (
	"context"
	"testing"
	"time"
)

func TestFramesRunsUntilCallbackStops(t *testing.T) {
	f := NewFrames()
	calls := 0
	f.Request(func() bool {
		calls++
		return calls < 3
	})

	if ran := f.TickN(10); ran != 3 {
		t.Errorf("TickN ran %d frames, expected 3", ran)
	}
	if f.Pending() {
		t.Error("callback should be dropped after returning false")
	}
	if f.Tick() {
		t.Error("Tick with nothing armed should report false")
	}
	if f.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", f.Ticks())
	}
}

func TestFramesRequestReplaces(t *testing.T) {
	f := NewFrames()
	var order []string
	f.Request(func() bool { order = append(order, "a"); return true })
	f.Request(func() bool { order = append(order, "b"); return true })

	f.Tick()
	f.Tick()
	if len(order) != 2 || order[0] != "b" || order[1] != "b" {
		t.Errorf("only the latest callback should run, got %v", order)
	}
}

func TestFramesRearmDuringTick(t *testing.T) {
	f := NewFrames()
	second := 0
	f.Request(func() bool {
		f.Request(func() bool { second++; return false })
		return false
	})

	f.Tick()
	if !f.Pending() {
		t.Fatal("callback armed during a tick must survive the old one stopping")
	}
	f.Tick()
	if second != 1 {
		t.Errorf("re-armed callback ran %d times, expected 1", second)
	}
}

func TestRunUnthrottled(t *testing.T) {
	f := NewFrames()
	n := 0
	f.Request(func() bool { n++; return n < 100 })

	if err := Run(context.Background(), f, 0); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if n != 100 {
		t.Errorf("ran %d frames, expected 100", n)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	f := NewFrames()
	f.Request(func() bool { return true })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := Run(ctx, f, 1000); err == nil {
		t.Error("Run should return the context error")
	}
	if f.Ticks() == 0 {
		t.Error("some frames should have run before the deadline")
	}
}
