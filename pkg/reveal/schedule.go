package reveal

import "time"

// Element is one animatable sub-part of a component. Present is false when
// the content for the slot is missing (for example an absent image URL).
type Element struct {
	Slot      Slot
	Direction Direction
	Present   bool
}

// Entry is a scheduled element: its slot, direction and start delay relative
// to the moment the component became visible.
type Entry struct {
	Slot      Slot
	Direction Direction
	Delay     time.Duration
	Index     int // position in the stagger sequence, -1 when not animated
}

// Animated reports whether the entry transitions at all.
func (e Entry) Animated() bool {
	return e.Direction.Animated()
}

// Schedule is the computed plan for one component instance.
type Schedule struct {
	Layout   Layout
	Root     Entry
	Entries  []Entry // present elements, in the layout's logical order
	Duration time.Duration
}

// Plan computes per-element delays. Only present elements with an animated
// direction take a stagger position: delay(i) = BaseDelay + i*StaggerIncrement.
// The root track always starts at BaseDelay.
func Plan(layout Layout, root Direction, elements []Element, cfg Config) Schedule {
	bySlot := make(map[Slot]Element, len(elements))
	for _, el := range elements {
		if !el.Present || el.Slot == SlotRoot {
			continue
		}
		bySlot[el.Slot] = el
	}

	s := Schedule{
		Layout:   layout,
		Duration: cfg.Duration,
		Root: Entry{
			Slot:      SlotRoot,
			Direction: normalize(root),
			Index:     -1,
		},
	}
	if s.Root.Animated() {
		s.Root.Delay = cfg.BaseDelay
		s.Root.Index = 0
	}

	i := 0
	for _, slot := range layout.Order() {
		el, ok := bySlot[slot]
		if !ok {
			continue
		}
		entry := Entry{Slot: slot, Direction: normalize(el.Direction), Index: -1}
		if entry.Animated() {
			entry.Index = i
			entry.Delay = cfg.BaseDelay + time.Duration(i)*cfg.StaggerIncrement
			i++
		}
		s.Entries = append(s.Entries, entry)
	}
	return s
}

// Animated reports whether any track transitions.
func (s Schedule) Animated() bool {
	if s.Root.Animated() {
		return true
	}
	for _, e := range s.Entries {
		if e.Animated() {
			return true
		}
	}
	return false
}

// End is the offset at which the last transition completes, or 0 when
// nothing animates.
func (s Schedule) End() time.Duration {
	var end time.Duration
	for _, e := range s.tracks() {
		if !e.Animated() {
			continue
		}
		if t := e.Delay + s.Duration; t > end {
			end = t
		}
	}
	return end
}

// Lookup returns the entry for slot.
func (s Schedule) Lookup(slot Slot) (Entry, bool) {
	if slot == SlotRoot {
		return s.Root, true
	}
	for _, e := range s.Entries {
		if e.Slot == slot {
			return e, true
		}
	}
	return Entry{}, false
}

func (s Schedule) tracks() []Entry {
	out := make([]Entry, 0, len(s.Entries)+1)
	out = append(out, s.Root)
	return append(out, s.Entries...)
}

func normalize(d Direction) Direction {
	if d == "" {
		return DirectionNone
	}
	return d
}
