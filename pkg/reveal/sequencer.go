package reveal

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Phase is the per-element animation state.
type Phase int

const (
	PhasePending Phase = iota
	PhaseAnimating
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseAnimating:
		return "animating"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// VisibilityState tracks whether the component has been seen and whether its
// animation has finished.
type VisibilityState struct {
	HasEnteredView bool
	HasAnimated    bool
}

// Env is what a sequencer needs from its host environment. Observer may be
// nil, which is treated like an unsupported environment.
type Env struct {
	Clock    Clock
	Observer Observer
	Sink     Sink
	Logger   *zap.Logger
}

// Sequencer drives one component instance from hidden to revealed. It is not
// safe for concurrent use: every method and every callback must run on the
// clock's logical thread.
type Sequencer struct {
	cfg    Config
	sched  Schedule
	env    Env
	logger *zap.Logger

	mounted   bool
	gen       uint64
	state     VisibilityState
	phases    map[Slot]Phase
	timers    []Timer
	sub       Subscription
	visibleAt time.Time
	remaining int
}

// New validates cfg against sched and returns an unmounted sequencer for sched.
func New(sched Schedule, cfg Config, env Env) (*Sequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sched.Duration != cfg.Duration {
		return nil, fmt.Errorf("reveal: schedule planned with duration %v, config has %v", sched.Duration, cfg.Duration)
	}
	if env.Clock == nil {
		return nil, errors.New("reveal: clock is required")
	}
	if env.Sink == nil {
		return nil, errors.New("reveal: sink is required")
	}
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sequencer{
		cfg:    cfg,
		sched:  sched,
		env:    env,
		logger: logger,
		phases: make(map[Slot]Phase),
	}, nil
}

// Schedule returns the plan the sequencer runs.
func (s *Sequencer) Schedule() Schedule { return s.sched }

// State returns the current visibility state.
func (s *Sequencer) State() VisibilityState { return s.state }

// Mounted reports whether Mount has been called without a matching Unmount.
func (s *Sequencer) Mounted() bool { return s.mounted }

// Phase returns the phase of slot; unknown slots read as done.
func (s *Sequencer) Phase(slot Slot) Phase {
	p, ok := s.phases[slot]
	if !ok {
		return PhaseDone
	}
	return p
}

// VisibleAt returns the time the component first became visible in the
// current run, or the zero time.
func (s *Sequencer) VisibleAt() time.Time { return s.visibleAt }

// Pending returns the number of timers the sequencer still holds.
func (s *Sequencer) Pending() int { return len(s.timers) }

// Mount applies initial styles and starts observing visibility. When
// nothing animates, or the environment cannot observe visibility, every
// element is shown at rest immediately.
func (s *Sequencer) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.gen++
	s.state = VisibilityState{}
	s.visibleAt = time.Time{}

	for _, e := range s.sched.tracks() {
		if e.Animated() {
			s.phases[e.Slot] = PhasePending
		} else {
			s.phases[e.Slot] = PhaseDone
		}
		s.env.Sink.Apply(e.Slot, InitialStyle(e, s.cfg))
	}

	if !s.sched.Animated() {
		s.state = VisibilityState{HasEnteredView: true, HasAnimated: true}
		return
	}

	if s.env.Observer == nil {
		s.failOpen(ErrUnsupported)
		return
	}
	gen := s.gen
	sub, err := s.env.Observer.Observe(s.cfg.Threshold, func(visible bool) {
		if !s.mounted || s.gen != gen {
			return
		}
		s.onVisibility(visible)
	})
	if err != nil {
		s.failOpen(err)
		return
	}
	if s.mounted && s.gen == gen {
		s.sub = sub
	} else if sub != nil {
		sub.Unsubscribe()
	}
}

// Unmount releases the subscription and every pending timer. Callbacks that
// were already in flight become no-ops. A later Mount starts from scratch.
func (s *Sequencer) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.gen++
	s.stopTimers()
	s.release()
	s.state = VisibilityState{}
	s.remaining = 0
}

func (s *Sequencer) failOpen(err error) {
	s.logger.Debug("visibility unavailable, showing content", zap.Error(err))
	for _, e := range s.sched.tracks() {
		if !e.Animated() {
			continue
		}
		s.phases[e.Slot] = PhaseDone
		s.env.Sink.Apply(e.Slot, Style{Opacity: 1})
	}
	s.state = VisibilityState{HasEnteredView: true, HasAnimated: true}
}

func (s *Sequencer) onVisibility(visible bool) {
	if visible {
		if s.state.HasEnteredView {
			return
		}
		s.state.HasEnteredView = true
		s.visibleAt = s.env.Clock.Now()
		s.start()
		return
	}
	// Leaving mid-flight, or after a trigger-once run, changes nothing.
	if s.cfg.TriggerOnce || !s.state.HasAnimated {
		return
	}
	s.state = VisibilityState{}
	for _, e := range s.sched.tracks() {
		if !e.Animated() {
			continue
		}
		s.phases[e.Slot] = PhasePending
		s.env.Sink.Apply(e.Slot, InitialStyle(e, s.cfg))
	}
}

func (s *Sequencer) start() {
	gen := s.gen
	s.remaining = 0
	for _, e := range s.sched.tracks() {
		if !e.Animated() {
			continue
		}
		s.remaining++
		s.timers = append(s.timers,
			s.env.Clock.AfterFunc(e.Delay, func() { s.animate(gen, e) }),
			s.env.Clock.AfterFunc(e.Delay+s.sched.Duration, func() { s.settle(gen, e) }),
		)
	}
	s.logger.Debug("reveal started",
		zap.String("layout", string(s.sched.Layout)),
		zap.Int("tracks", s.remaining),
		zap.Duration("end", s.sched.End()))
}

func (s *Sequencer) animate(gen uint64, e Entry) {
	if !s.mounted || s.gen != gen || s.phases[e.Slot] != PhasePending {
		return
	}
	s.phases[e.Slot] = PhaseAnimating
	s.env.Sink.Apply(e.Slot, RestingStyle(e, s.cfg))
}

func (s *Sequencer) settle(gen uint64, e Entry) {
	if !s.mounted || s.gen != gen || s.phases[e.Slot] != PhaseAnimating {
		return
	}
	s.phases[e.Slot] = PhaseDone
	s.remaining--
	if s.remaining > 0 {
		return
	}
	s.state.HasAnimated = true
	s.timers = nil
	if s.cfg.TriggerOnce {
		s.release()
	}
}

func (s *Sequencer) stopTimers() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

func (s *Sequencer) release() {
	if s.sub != nil {
		s.sub.Unsubscribe()
		s.sub = nil
	}
}
