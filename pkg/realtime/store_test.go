package realtime

import (
	"testing"
	"time"
)

func TestSessionStore_LoadCreatesOnce(t *testing.T) {
	s := NewSessionStore[string, string](time.Hour)
	calls := 0
	init := func() string { calls++; return "light" }

	if got := s.Load("v1", init); got != "light" {
		t.Errorf("Load %q, want light", got)
	}
	s.Load("v1", init)
	if calls != 1 {
		t.Errorf("init called %d times, want 1", calls)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get should return false for missing ID")
	}
}

func TestSessionStore_UpdateAndPublish(t *testing.T) {
	s := NewSessionStore[string, string](time.Hour)
	ch, cancel := s.Subscribe("v1", nil)
	defer cancel()

	got := s.Update("v1", nil, func(state *string) { *state = "dark" })
	if got != "dark" {
		t.Errorf("Update returned %q, want dark", got)
	}
	s.Publish("v1", got)
	if ev := <-ch; ev != "dark" {
		t.Errorf("event %q, want dark", ev)
	}
	s.Publish("nobody", "ignored")
}

func TestSessionStore_SweepKeepsSubscribedSessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSessionStore[int, string](time.Minute)
	s.SetClock(func() time.Time { return now })

	s.Load("idle", nil)
	_, cancel := s.Subscribe("watching", nil)
	defer cancel()

	now = now.Add(2 * time.Minute)
	s.Load("fresh", nil)

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if _, ok := s.Get("idle"); ok {
		t.Error("idle session should be gone")
	}
	if s.Len() != 2 {
		t.Errorf("Len %d, want 2", s.Len())
	}
}

func TestSessionStore_NoExpiry(t *testing.T) {
	s := NewSessionStore[int, string](0)
	s.Load("a", nil)
	if s.Sweep() != 0 {
		t.Error("Sweep with ttl 0 should not remove anything")
	}
}
