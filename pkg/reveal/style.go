package reveal

import (
	"strconv"
	"strings"
	"time"
)

// Style is the visual state applied to one element.
type Style struct {
	Opacity    float64
	TranslateX int
	TranslateY int
	// Transition is false for styles that apply instantly.
	Transition bool
	Delay      time.Duration
	Duration   time.Duration
	Easing     string
}

// Identity reports whether the element is at its resting transform.
func (s Style) Identity() bool {
	return s.TranslateX == 0 && s.TranslateY == 0
}

// CSS renders the style as an inline style attribute value.
func (s Style) CSS() string {
	var b strings.Builder
	b.WriteString("opacity:")
	b.WriteString(strconv.FormatFloat(s.Opacity, 'f', -1, 64))
	b.WriteString(";transform:")
	if s.Identity() {
		b.WriteString("none")
	} else {
		b.WriteString("translate3d(")
		b.WriteString(px(s.TranslateX))
		b.WriteString(",")
		b.WriteString(px(s.TranslateY))
		b.WriteString(",0)")
	}
	if s.Transition {
		s.writeTransition(&b)
	}
	return b.String()
}

func (s Style) writeTransition(b *strings.Builder) {
	b.WriteString(";transition-property:opacity,transform")
	b.WriteString(";transition-duration:")
	b.WriteString(ms(s.Duration))
	b.WriteString(";transition-timing-function:")
	b.WriteString(s.Easing)
	if s.Delay > 0 {
		b.WriteString(";transition-delay:")
		b.WriteString(ms(s.Delay))
	}
}

// DeferredCSS renders an inline style whose hidden state only applies once
// the page stylesheet opts in: opacity and transform go out as the custom
// properties --reveal-opacity and --reveal-transform, which the stylesheet
// reads under a gate class the browser script sets. Until then the element
// renders at rest. A style at rest with no transition renders empty.
func (s Style) DeferredCSS() string {
	if s.Identity() && s.Opacity == 1 && !s.Transition {
		return ""
	}
	var b strings.Builder
	b.WriteString("--reveal-opacity:")
	b.WriteString(strconv.FormatFloat(s.Opacity, 'f', -1, 64))
	b.WriteString(";--reveal-transform:")
	if s.Identity() {
		b.WriteString("none")
	} else {
		b.WriteString("translate3d(")
		b.WriteString(px(s.TranslateX))
		b.WriteString(",")
		b.WriteString(px(s.TranslateY))
		b.WriteString(",0)")
	}
	if s.Transition {
		s.writeTransition(&b)
	}
	return b.String()
}

// InitialStyle is the hidden, offset state of an animated entry. Entries
// with DirectionNone start at rest.
func InitialStyle(e Entry, cfg Config) Style {
	if !e.Animated() {
		return Style{Opacity: 1}
	}
	dx, dy := e.Direction.Offset(cfg.Distance)
	return Style{Opacity: 0, TranslateX: dx, TranslateY: dy}
}

// RestingStyle is the visible state an animated entry transitions to.
func RestingStyle(e Entry, cfg Config) Style {
	if !e.Animated() {
		return Style{Opacity: 1}
	}
	return Style{
		Opacity:    1,
		Transition: true,
		Duration:   cfg.Duration,
		Easing:     cfg.easing(),
	}
}

// InlineStyle is the server-rendered form of an entry: its initial state
// carrying the transition and its delay, so that adding the revealed class
// in the browser runs the whole staggered sequence.
func InlineStyle(e Entry, cfg Config) Style {
	s := InitialStyle(e, cfg)
	if !e.Animated() {
		return s
	}
	s.Transition = true
	s.Delay = e.Delay
	s.Duration = cfg.Duration
	s.Easing = cfg.easing()
	return s
}

func px(v int) string {
	if v == 0 {
		return "0"
	}
	return strconv.Itoa(v) + "px"
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
