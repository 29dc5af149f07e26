package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("TRIPABLE_DEV", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestPlan_DefaultCard(t *testing.T) {
	out := runCLI(t, "plan", "--simulate=false")

	for _, want := range []string{
		"layout stacked",
		"ends at 1s",
		"transition-delay:150ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlan_MissingMediaShiftsTitle(t *testing.T) {
	out := runCLI(t, "plan", "--simulate=false", "--media=")

	var title string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "title") {
			title = line
		}
	}
	if !strings.Contains(title, "0s") {
		t.Errorf("title should start at the base delay without media, got %q", title)
	}
}

func TestPlan_Trace(t *testing.T) {
	out := runCLI(t, "plan")

	if !strings.Contains(out, "entered view: true, animated: true") {
		t.Errorf("trace did not complete:\n%s", out)
	}
	if !strings.Contains(out, "mount") {
		t.Errorf("trace should list the mount-time styles:\n%s", out)
	}
}

func TestPlan_RejectsUnknownDirection(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"plan", "--title=diagonal"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown direction")
	}
}

func TestPlan_RealtimeRunsOnLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "tripable.yaml")
	cfg := "reveal:\n  stagger: 10ms\n  duration: 30ms\n  trigger_once: true\n  threshold: 0.1\n  distance: 24\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	out := runCLI(t, "--config", path, "plan", "--realtime")

	if !strings.Contains(out, "ends at 50ms") {
		t.Errorf("schedule should use the configured timing:\n%s", out)
	}
	if !strings.Contains(out, "entered view: true, animated: true") {
		t.Errorf("realtime trace did not complete:\n%s", out)
	}
}
