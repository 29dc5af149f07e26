package reveal

import (
	"strings"
	"testing"
	"time"
)

func TestInitialStyle_Offsets(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirectionTop, 0, -24},
		{DirectionBottom, 0, 24},
		{DirectionLeft, -24, 0},
		{DirectionRight, 24, 0},
	}
	for _, tt := range tests {
		s := InitialStyle(Entry{Slot: SlotTitle, Direction: tt.dir}, cfg)
		if s.Opacity != 0 {
			t.Errorf("%s: opacity %v, want 0", tt.dir, s.Opacity)
		}
		if s.TranslateX != tt.dx || s.TranslateY != tt.dy {
			t.Errorf("%s: offset (%d,%d), want (%d,%d)", tt.dir, s.TranslateX, s.TranslateY, tt.dx, tt.dy)
		}
	}
}

func TestInlineStyle_NoneHasNoDelay(t *testing.T) {
	e := Entry{Slot: SlotTitle, Direction: DirectionNone, Delay: 300 * time.Millisecond}
	s := InlineStyle(e, DefaultConfig())
	if s.Opacity != 1 {
		t.Errorf("opacity %v, want 1", s.Opacity)
	}
	css := s.CSS()
	if strings.Contains(css, "transition") {
		t.Errorf("css %q should have no transition", css)
	}
	if css != "opacity:1;transform:none" {
		t.Errorf("css = %q", css)
	}
}

func TestInlineStyle_AnimatedCarriesDelay(t *testing.T) {
	e := Entry{Slot: SlotDescription, Direction: DirectionBottom, Delay: 150 * time.Millisecond}
	css := InlineStyle(e, DefaultConfig()).CSS()
	for _, want := range []string{
		"opacity:0",
		"transform:translate3d(0,24px,0)",
		"transition-duration:700ms",
		"transition-delay:150ms",
		DefaultEasing,
	} {
		if !strings.Contains(css, want) {
			t.Errorf("css %q missing %q", css, want)
		}
	}
}

func TestRestingStyle(t *testing.T) {
	s := RestingStyle(Entry{Slot: SlotMedia, Direction: DirectionLeft}, DefaultConfig())
	if s.Opacity != 1 || !s.Identity() {
		t.Errorf("resting = %+v, want visible at identity", s)
	}
	if !s.Transition || s.Duration != DefaultDuration {
		t.Errorf("resting should transition over %v, got %+v", DefaultDuration, s)
	}
}

func TestDeferredCSS_HiddenStateOnlyInCustomProperties(t *testing.T) {
	e := Entry{Slot: SlotTitle, Direction: DirectionLeft, Delay: 300 * time.Millisecond}
	css := InlineStyle(e, DefaultConfig()).DeferredCSS()

	for _, want := range []string{
		"--reveal-opacity:0",
		"--reveal-transform:translate3d(-24px,0,0)",
		"transition-delay:300ms",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("css %q missing %q", css, want)
		}
	}
	for _, decl := range strings.Split(css, ";") {
		if strings.HasPrefix(decl, "opacity:") || strings.HasPrefix(decl, "transform:") {
			t.Errorf("css %q hides the element without the stylesheet gate", css)
		}
	}
}

func TestDeferredCSS_NoneIsEmpty(t *testing.T) {
	e := Entry{Slot: SlotTitle, Direction: DirectionNone}
	if css := InlineStyle(e, DefaultConfig()).DeferredCSS(); css != "" {
		t.Errorf("css = %q, want empty", css)
	}
}
