package reveal

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Clock schedules callbacks. Implementations must deliver every callback on
// a single logical thread.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// ManualClock is a simulated clock. Callbacks run synchronously inside
// Advance, in due-time order; ties fire in registration order.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	c       *ManualClock
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManualClock returns a clock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the simulated time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers fn to run once the clock has advanced by d.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	t := &manualTimer{c: c, when: c.now.Add(d), seq: c.seq, fn: fn}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, running every callback that comes due.
// Callbacks scheduled by other callbacks also run if they fall within d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.popDueLocked(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = t.when
		t.fired = true
		c.mu.Unlock()
		t.fn()
	}
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (c *ManualClock) popDueLocked(target time.Time) *manualTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].when.Equal(c.timers[j].when) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].when.Before(c.timers[j].when)
	})
	if len(c.timers) == 0 || c.timers[0].when.After(target) {
		return nil
	}
	t := c.timers[0]
	c.timers = c.timers[1:]
	return t
}

func (t *manualTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Loop runs posted functions one at a time on its own goroutine. It is the
// single logical thread that LoopClock delivers callbacks on.
type Loop struct {
	ctx    context.Context
	cancel context.CancelFunc
	queue  chan func()
	done   chan struct{}
	logger *zap.Logger
}

// NewLoop starts a loop. A nil logger discards output.
func NewLoop(logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loop{
		ctx:    ctx,
		cancel: cancel,
		queue:  make(chan func(), 64),
		done:   make(chan struct{}),
		logger: logger,
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case <-l.ctx.Done():
			return
		case fn := <-l.queue:
			l.call(fn)
		}
	}
}

func (l *Loop) call(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("reveal loop callback panicked", zap.Any("panic", r))
		}
	}()
	fn()
}

// Post queues fn. It reports false once the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.ctx.Done():
		return false
	default:
	}
	select {
	case <-l.ctx.Done():
		return false
	case l.queue <- fn:
		return true
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(fn func()) bool {
	ran := make(chan struct{})
	if !l.Post(func() { defer close(ran); fn() }) {
		return false
	}
	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}

// Close stops the loop and waits for its goroutine to exit. Queued
// functions that have not started are dropped.
func (l *Loop) Close() {
	l.cancel()
	<-l.done
}

// LoopClock is a wall clock whose timers fire on a Loop.
type LoopClock struct {
	loop *Loop
}

// NewLoopClock returns a clock delivering callbacks on loop.
func NewLoopClock(loop *Loop) *LoopClock {
	return &LoopClock{loop: loop}
}

func (c *LoopClock) Now() time.Time {
	return time.Now()
}

func (c *LoopClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		c.loop.Post(fn)
	})
}
