// Package reveal sequences scroll-triggered entrance animations for the
// sub-elements of a card or section.
package reveal

import (
	"fmt"
	"strings"
)

// Direction names the side an element enters from.
type Direction string

const (
	DirectionNone   Direction = "none"
	DirectionTop    Direction = "top"
	DirectionBottom Direction = "bottom"
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
)

// ParseDirection accepts the direction names case-insensitively. An empty
// string parses as DirectionNone.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DirectionNone, nil
	case DirectionNone, DirectionTop, DirectionBottom, DirectionLeft, DirectionRight:
		return d, nil
	default:
		return DirectionNone, fmt.Errorf("reveal: unknown direction %q", s)
	}
}

// Animated reports whether the direction produces a transition.
func (d Direction) Animated() bool {
	return d != DirectionNone && d != ""
}

// Offset returns the initial translation for an element entering from d.
func (d Direction) Offset(distance int) (dx, dy int) {
	switch d {
	case DirectionTop:
		return 0, -distance
	case DirectionBottom:
		return 0, distance
	case DirectionLeft:
		return -distance, 0
	case DirectionRight:
		return distance, 0
	}
	return 0, 0
}

// Slot is a logical sub-part of a card or section. Image and icon share
// SlotMedia since a component never renders both.
type Slot string

const (
	SlotRoot        Slot = "root"
	SlotMedia       Slot = "media"
	SlotTitle       Slot = "title"
	SlotDescription Slot = "description"
	SlotContent     Slot = "content"
)

// Layout selects the fixed logical order used to stagger sub-elements.
type Layout string

const (
	// LayoutStacked is a card with media above text, revealed top to bottom.
	LayoutStacked Layout = "stacked"
	// LayoutSection is a text-first section header; media comes last.
	LayoutSection Layout = "section"
	// LayoutBuildUp reveals media first, then builds the text from the bottom up.
	LayoutBuildUp Layout = "buildup"
)

var layoutOrder = map[Layout][]Slot{
	LayoutStacked: {SlotMedia, SlotTitle, SlotDescription, SlotContent},
	LayoutSection: {SlotTitle, SlotDescription, SlotContent, SlotMedia},
	LayoutBuildUp: {SlotMedia, SlotDescription, SlotTitle, SlotContent},
}

// ParseLayout accepts one of the layout names; empty means LayoutStacked.
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	if l == "" {
		return LayoutStacked, nil
	}
	if _, ok := layoutOrder[l]; !ok {
		return "", fmt.Errorf("reveal: unknown layout %q", s)
	}
	return l, nil
}

// Order returns the slot order for the layout.
func (l Layout) Order() []Slot {
	order, ok := layoutOrder[l]
	if !ok {
		order = layoutOrder[LayoutStacked]
	}
	out := make([]Slot, len(order))
	copy(out, order)
	return out
}
