package components

import (
	"strconv"

	g "maragu.dev/gomponents"

	"tripable/internal/viewmodel"
)

// revealRoot marks a container for reveal.js and carries the root track style.
func revealRoot(r viewmodel.Reveal) g.Node {
	if !r.Animated {
		return nil
	}
	return g.Group([]g.Node{
		g.Attr("data-reveal", ""),
		g.Attr("data-reveal-threshold", r.Threshold),
		g.Attr("data-reveal-once", strconv.FormatBool(r.Once)),
		g.Attr("data-reveal-end", strconv.FormatInt(r.EndMs, 10)),
		g.If(r.Root != "", g.Attr("data-reveal-root", "")),
		styleAttr(r.Root),
	})
}

// revealSlot applies a sub-element's inline style.
func revealSlot(r viewmodel.Reveal, slot string) g.Node {
	css := r.Style(slot)
	if css == "" {
		return nil
	}
	return g.Group([]g.Node{
		g.Attr("data-reveal-slot", slot),
		styleAttr(css),
	})
}
