package reveal

import (
	"errors"
	"slices"
	"sync"
)

// ErrUnsupported is returned by observers that cannot watch visibility in
// the current environment. Sequencers treat it as "visible now".
var ErrUnsupported = errors.New("reveal: visibility observation unsupported")

// Observer reports transitions of "target is at least threshold visible".
type Observer interface {
	Observe(threshold float64, fn func(visible bool)) (Subscription, error)
}

// Subscription releases an observation.
type Subscription interface {
	Unsubscribe()
}

// Unsupported is an Observer for environments without a visibility primitive.
type Unsupported struct{}

// Observe always fails with ErrUnsupported.
func (Unsupported) Observe(float64, func(bool)) (Subscription, error) {
	return nil, ErrUnsupported
}

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// IntersectionRatio returns the fraction of target's area inside viewport.
func IntersectionRatio(target, viewport Rect) float64 {
	a := target.area()
	if a == 0 {
		return 0
	}
	w := min(target.X+target.W, viewport.X+viewport.W) - max(target.X, viewport.X)
	h := min(target.Y+target.H, viewport.Y+viewport.H) - max(target.Y, viewport.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return (w * h) / a
}

// Viewport is a scrollable window over a page. Targets tracked on it are
// re-evaluated on every scroll or resize and observers hear only changes.
type Viewport struct {
	mu     sync.Mutex
	rect   Rect
	nextID int
	watch  map[int]*watch
}

type watch struct {
	target    Rect
	threshold float64
	fn        func(bool)
	visible   bool
}

// NewViewport returns a viewport of the given size scrolled to the top.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		rect:  Rect{W: width, H: height},
		watch: make(map[int]*watch),
	}
}

// Track returns an Observer for target.
func (v *Viewport) Track(target Rect) Observer {
	return &tracked{v: v, target: target}
}

// ScrollTo moves the viewport's top edge to y.
func (v *Viewport) ScrollTo(y float64) {
	v.mu.Lock()
	v.rect.Y = y
	v.mu.Unlock()
	v.evaluate()
}

// Resize changes the viewport dimensions.
func (v *Viewport) Resize(width, height float64) {
	v.mu.Lock()
	v.rect.W, v.rect.H = width, height
	v.mu.Unlock()
	v.evaluate()
}

// Rect returns the current viewport rectangle.
func (v *Viewport) Rect() Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rect
}

func (v *Viewport) evaluate() {
	type fire struct {
		fn      func(bool)
		visible bool
	}
	var fires []fire

	v.mu.Lock()
	ids := make([]int, 0, len(v.watch))
	for id := range v.watch {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		w := v.watch[id]
		visible := meets(IntersectionRatio(w.target, v.rect), w.threshold)
		if visible != w.visible {
			w.visible = visible
			fires = append(fires, fire{fn: w.fn, visible: visible})
		}
	}
	v.mu.Unlock()

	// Callbacks run unlocked so they may unsubscribe.
	for _, f := range fires {
		f.fn(f.visible)
	}
}

func (v *Viewport) add(target Rect, threshold float64, fn func(bool)) (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	visible := meets(IntersectionRatio(target, v.rect), threshold)
	v.watch[id] = &watch{target: target, threshold: threshold, fn: fn, visible: visible}
	return id, visible
}

func (v *Viewport) remove(id int) {
	v.mu.Lock()
	delete(v.watch, id)
	v.mu.Unlock()
}

// meets treats threshold 0 as "any overlap".
func meets(ratio, threshold float64) bool {
	if threshold <= 0 {
		return ratio > 0
	}
	return ratio >= threshold
}

type tracked struct {
	v      *Viewport
	target Rect
}

// Observe registers fn. When the target is already visible fn is called
// once with true before Observe returns.
func (t *tracked) Observe(threshold float64, fn func(bool)) (Subscription, error) {
	id, visible := t.v.add(t.target, threshold, fn)
	sub := &viewportSub{v: t.v, id: id}
	if visible {
		fn(true)
	}
	return sub, nil
}

type viewportSub struct {
	v    *Viewport
	id   int
	once sync.Once
}

func (s *viewportSub) Unsubscribe() {
	s.once.Do(func() { s.v.remove(s.id) })
}
