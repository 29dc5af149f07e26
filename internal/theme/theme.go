// Package theme tracks each visitor's light/dark preference and fans
// changes out to every open tab.
package theme

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripable/pkg/realtime"
)

// Mode is the rendered color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Preference is what the visitor asked for; System follows the OS.
type Preference string

const (
	PreferLight  Preference = "light"
	PreferDark   Preference = "dark"
	PreferSystem Preference = "system"
)

// ParseMode accepts "light" or "dark".
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// ParsePreference accepts light, dark or system.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case PreferLight, PreferDark, PreferSystem:
		return p, nil
	case "":
		return PreferSystem, nil
	default:
		return "", fmt.Errorf("theme: unknown preference %q", s)
	}
}

// State is a visitor's theme settings.
type State struct {
	Preference Preference
	// System is the last OS preference reported; empty when unknown.
	System Mode
}

// Resolve returns the mode to render: an explicit preference wins, then the
// OS preference, then light.
func (s State) Resolve() Mode {
	switch s.Preference {
	case PreferLight:
		return Light
	case PreferDark:
		return Dark
	}
	if s.System != "" {
		return s.System
	}
	return Light
}

// Service owns visitor theme state. Readers subscribe to changes instead of
// polling.
type Service struct {
	sessions *realtime.SessionStore[State, Mode]
	logger   *zap.Logger
}

// NewService returns a service that forgets visitors idle for ttl.
func NewService(ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sessions: realtime.NewSessionStore[State, Mode](ttl),
		logger:   logger,
	}
}

func defaultState() State { return State{Preference: PreferSystem} }

// Seed records what a request tells us about the visitor, typically the
// persisted cookie preference and the OS client hint, and returns the state.
// Seeding only fills gaps: it never overrides state the visitor changed
// during the session.
func (s *Service) Seed(visitor string, pref Preference, system Mode) State {
	return s.sessions.Update(visitor, func() State {
		return State{Preference: pref, System: system}
	}, func(st *State) {
		if st.System == "" && system != "" {
			st.System = system
		}
	})
}

// State returns the visitor's current state.
func (s *Service) State(visitor string) State {
	return s.sessions.Load(visitor, defaultState)
}

// Toggle flips the rendered mode and stores it as an explicit preference.
func (s *Service) Toggle(visitor string) State {
	return s.change(visitor, func(st *State) {
		if st.Resolve() == Dark {
			st.Preference = PreferLight
		} else {
			st.Preference = PreferDark
		}
	})
}

// SetPreference stores an explicit preference.
func (s *Service) SetPreference(visitor string, pref Preference) State {
	return s.change(visitor, func(st *State) { st.Preference = pref })
}

// SetSystem records an OS-level change notification. It only changes the
// rendered mode for visitors following the system.
func (s *Service) SetSystem(visitor string, system Mode) State {
	return s.change(visitor, func(st *State) { st.System = system })
}

// Subscribe returns a channel of rendered modes for the visitor and a
// function that releases it.
func (s *Service) Subscribe(visitor string) (<-chan Mode, func()) {
	return s.sessions.Subscribe(visitor, defaultState)
}

// RunJanitor expires idle visitors until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	s.sessions.RunJanitor(ctx, interval)
}

// Visitors returns the number of tracked visitors.
func (s *Service) Visitors() int { return s.sessions.Len() }

func (s *Service) change(visitor string, fn func(*State)) State {
	var before Mode
	st := s.sessions.Update(visitor, defaultState, func(st *State) {
		before = st.Resolve()
		fn(st)
	})
	if after := st.Resolve(); after != before {
		s.sessions.Publish(visitor, after)
		s.logger.Debug("theme changed",
			zap.String("visitor", visitor),
			zap.String("mode", string(after)),
			zap.String("preference", string(st.Preference)))
	}
	return st
}
