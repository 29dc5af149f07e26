package reveal

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestManualClock_OrderAndStop(t *testing.T) {
	c := NewManualClock(epoch)
	var order []string
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "c") })
	stopped := c.AfterFunc(15*time.Millisecond, func() { order = append(order, "x") })
	if !stopped.Stop() {
		t.Error("Stop should report true for a pending timer")
	}
	if stopped.Stop() {
		t.Error("second Stop should report false")
	}

	c.Advance(15 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Fatalf("order after 15ms = %v, want [a]", order)
	}
	c.Advance(5 * time.Millisecond)
	if got := len(order); got != 3 || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order = %v, want [a b c]", order)
	}
	if !c.Now().Equal(epoch.Add(20 * time.Millisecond)) {
		t.Errorf("Now = %v", c.Now())
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", c.Pending())
	}
}

func TestManualClock_NestedScheduling(t *testing.T) {
	c := NewManualClock(epoch)
	var fired []time.Duration
	c.AfterFunc(10*time.Millisecond, func() {
		fired = append(fired, c.Now().Sub(epoch))
		c.AfterFunc(5*time.Millisecond, func() {
			fired = append(fired, c.Now().Sub(epoch))
		})
	})
	c.Advance(time.Second)
	if len(fired) != 2 || fired[0] != 10*time.Millisecond || fired[1] != 15*time.Millisecond {
		t.Errorf("fired = %v, want [10ms 15ms]", fired)
	}
}

func TestLoop_RunsInOrderAndCloses(t *testing.T) {
	l := NewLoop(nil)
	var got []int
	for i := 0; i < 5; i++ {
		l.Post(func() { got = append(got, i) })
	}
	l.Do(func() {})
	l.Close()

	for i, v := range got {
		if v != i {
			t.Fatalf("got %v, want ordered 0..4", got)
		}
	}
	if l.Post(func() {}) {
		t.Error("Post after Close should report false")
	}
}

func TestLoop_RecoversPanics(t *testing.T) {
	l := NewLoop(nil)
	defer l.Close()
	l.Post(func() { panic("boom") })
	if !l.Do(func() {}) {
		t.Error("loop should keep running after a panic")
	}
}

func TestLoopClock_DrivesSequencer(t *testing.T) {
	l := NewLoop(nil)
	defer l.Close()

	cfg := DefaultConfig()
	cfg.Duration = 5 * time.Millisecond
	cfg.StaggerIncrement = time.Millisecond
	sched := scenarioSchedule(cfg)

	var applied atomic.Int32
	var seq *Sequencer
	l.Do(func() {
		var err error
		seq, err = New(sched, cfg, Env{
			Clock: NewLoopClock(l),
			Sink: SinkFunc(func(Slot, Style) {
				applied.Add(1)
			}),
			Observer: NewViewport(100, 100).Track(Rect{W: 10, H: 10}),
		})
		if err != nil {
			t.Errorf("New: %v", err)
			return
		}
		seq.Mount()
	})

	deadline := time.After(2 * time.Second)
	for {
		var finished bool
		l.Do(func() { finished = seq != nil && seq.State().HasAnimated })
		if finished {
			break
		}
		select {
		case <-deadline:
			t.Fatal("sequencer did not finish")
		case <-time.After(2 * time.Millisecond):
		}
	}
	if applied.Load() != 6 {
		t.Errorf("applied %d styles, want 6", applied.Load())
	}
	l.Do(seq.Unmount)
}
