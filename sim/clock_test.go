package sim

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestClockDue(t *testing.T) {
	c := NewClock(10 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	if !c.Due(t0) {
		t.Fatal("first call should be due")
	}
	if c.Due(t0.Add(5 * time.Millisecond)) {
		t.Error("due before the period elapsed")
	}
	if !c.Due(t0.Add(10 * time.Millisecond)) {
		t.Error("not due after one period")
	}

	// A long stall runs one tick, not a backlog
	late := t0.Add(100 * time.Millisecond)
	if !c.Due(late) {
		t.Error("not due after stall")
	}
	if c.Due(late.Add(time.Millisecond)) {
		t.Error("backlog tick ran")
	}
	if !c.Due(late.Add(10 * time.Millisecond)) {
		t.Error("schedule not resumed from the stall")
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(time.Second)
	t0 := time.Unix(0, 0)
	c.Due(t0)
	c.Reset()
	if !c.Due(t0.Add(time.Millisecond)) {
		t.Error("Due after Reset should fire")
	}
}

func TestClockDefaultPeriod(t *testing.T) {
	if got := NewClock(0).Period(); got != time.Second/60 {
		t.Errorf("period = %v, want %v", got, time.Second/60)
	}
}

func TestClockRun(t *testing.T) {
	c := NewClock(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	ticks := 0
	err := c.Run(ctx, func() {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if ticks < 3 {
		t.Errorf("ticks = %d, want at least 3", ticks)
	}
}
