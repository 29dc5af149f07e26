package reveal

import (
	"math"
	"testing"
)

func TestIntersectionRatio(t *testing.T) {
	vp := Rect{W: 100, H: 100}
	tests := []struct {
		name   string
		target Rect
		want   float64
	}{
		{"inside", Rect{X: 10, Y: 10, W: 20, H: 20}, 1},
		{"half below", Rect{X: 0, Y: 50, W: 100, H: 100}, 0.5},
		{"outside", Rect{X: 0, Y: 200, W: 10, H: 10}, 0},
		{"touching edge", Rect{X: 0, Y: 100, W: 10, H: 10}, 0},
		{"empty", Rect{X: 0, Y: 0, W: 0, H: 10}, 0},
	}
	for _, tt := range tests {
		got := IntersectionRatio(tt.target, vp)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: ratio %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestViewport_ReportsTransitionsOnly(t *testing.T) {
	vp := NewViewport(100, 100)
	obs := vp.Track(Rect{Y: 150, W: 100, H: 100})

	var events []bool
	sub, err := obs.Observe(0.25, func(v bool) { events = append(events, v) })
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}

	vp.ScrollTo(60)  // 10% visible
	vp.ScrollTo(80)  // 30% visible
	vp.ScrollTo(100) // 50% visible
	vp.ScrollTo(0)   // hidden

	want := []bool{true, false}
	if len(events) != len(want) {
		t.Fatalf("events %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}

	sub.Unsubscribe()
	sub.Unsubscribe()
	vp.ScrollTo(100)
	if len(events) != 2 {
		t.Errorf("events after unsubscribe: %v", events)
	}
}

func TestViewport_ZeroThresholdMeansAnyPixel(t *testing.T) {
	vp := NewViewport(100, 100)
	var visible bool
	_, _ = vp.Track(Rect{Y: 199, W: 10, H: 10}).Observe(0, func(v bool) { visible = v })
	vp.ScrollTo(100)
	if !visible {
		t.Error("a single visible row should count with threshold 0")
	}
}

func TestViewport_ResizeReevaluates(t *testing.T) {
	vp := NewViewport(100, 100)
	var visible bool
	_, _ = vp.Track(Rect{Y: 150, W: 10, H: 10}).Observe(1, func(v bool) { visible = v })
	vp.Resize(100, 200)
	if !visible {
		t.Error("target should be visible after growing the viewport")
	}
}

func TestUnsupported(t *testing.T) {
	if _, err := (Unsupported{}).Observe(0.1, func(bool) {}); err != ErrUnsupported {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
