package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"tripable/internal/viewmodel"
)

// AnimatedCard renders a destination card. Media, title and description are
// each optional; a missing one is simply left out.
func AnimatedCard(c viewmodel.Card) g.Node {
	return h.Article(
		h.Class("card"),
		h.ID("card-"+c.ID),
		revealRoot(c.Reveal),
		cardMedia(c),
		h.Div(
			h.Class("card__body"),
			g.If(c.Title != "", h.H3(h.Class("card__title"), revealSlot(c.Reveal, "title"), g.Text(c.Title))),
			g.If(c.Subtitle != "", h.P(h.Class("card__subtitle"), g.Text(c.Subtitle))),
			g.If(c.Description != "", h.P(h.Class("card__description"), revealSlot(c.Reveal, "description"), g.Text(c.Description))),
			g.If(len(c.Features) > 0, h.Ul(
				h.Class("card__features"),
				revealSlot(c.Reveal, "content"),
				g.Map(c.Features, func(f string) g.Node { return h.Li(g.Text(f)) }),
			)),
			g.If(c.Href != "", h.A(h.Class("card__link"), h.Href(c.Href), g.Text("View on the map"))),
		),
	)
}

func cardMedia(c viewmodel.Card) g.Node {
	switch {
	case c.Image != "":
		return h.Div(
			h.Class("card__media"),
			revealSlot(c.Reveal, "media"),
			h.Img(
				h.Src(c.Image),
				h.Alt(c.ImageAlt),
				g.Attr("loading", "lazy"),
				g.If(len(c.ImageFallbacks) > 0, g.Attr("data-fallback", strings.Join(c.ImageFallbacks, " "))),
			),
		)
	case c.Icon != "":
		return h.Div(
			h.Class("card__media card__media--icon"),
			revealSlot(c.Reveal, "media"),
			h.Span(h.Class("icon icon-"+c.Icon), g.Attr("aria-hidden", "true")),
		)
	}
	return nil
}

// Carousel lays cards out in a horizontally scrolling track.
func Carousel(label string, cards []viewmodel.Card) g.Node {
	return h.Div(
		h.Class("carousel"),
		g.Attr("role", "region"),
		g.Attr("aria-label", label),
		g.Attr("tabindex", "0"),
		h.Div(
			h.Class("carousel__track"),
			g.Map(cards, AnimatedCard),
		),
	)
}
