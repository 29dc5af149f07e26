package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"tripable/internal/viewmodel"
)

// AnimatedSection renders a titled section whose header and content reveal
// in sequence.
func AnimatedSection(s viewmodel.Section, content ...g.Node) g.Node {
	return h.Section(
		h.Class("section"),
		g.If(s.ID != "", h.ID(s.ID)),
		revealRoot(s.Reveal),
		h.Div(
			h.Class("section__header"),
			g.If(s.Title != "", h.H2(h.Class("section__title"), revealSlot(s.Reveal, "title"), g.Text(s.Title))),
			g.If(s.Description != "", h.P(h.Class("section__description"), revealSlot(s.Reveal, "description"), g.Text(s.Description))),
		),
		g.If(len(content) > 0, h.Div(h.Class("section__content"), revealSlot(s.Reveal, "content"), g.Group(content))),
	)
}

// Hero is the landing banner with the logo.
func Hero(s viewmodel.Section) g.Node {
	return h.Section(
		h.Class("hero"),
		revealRoot(s.Reveal),
		h.Div(
			h.Class("hero__logo"),
			revealSlot(s.Reveal, "media"),
			h.Img(h.Src("/static/img/logo.svg"), h.Alt(""), h.Width("96"), h.Height("96")),
		),
		h.H1(h.Class("hero__title"), revealSlot(s.Reveal, "title"), g.Text(s.Title)),
		h.P(h.Class("hero__tagline"), revealSlot(s.Reveal, "description"), g.Text(s.Description)),
		h.Div(
			h.Class("hero__actions"),
			revealSlot(s.Reveal, "content"),
			h.A(h.Class("button button--primary"), h.Href("#destinations"), g.Text("Explore destinations")),
			h.A(h.Class("button"), h.Href("/register"), g.Text("Join the beta")),
		),
	)
}

// FeedbackList renders traveller quotes.
func FeedbackList(entries []viewmodel.FeedbackEntry) g.Node {
	return h.Div(
		h.Class("feedback"),
		g.Map(entries, func(e viewmodel.FeedbackEntry) g.Node {
			return h.Figure(
				h.Class("feedback__item"),
				revealRoot(e.Reveal),
				h.BlockQuote(revealSlot(e.Reveal, "description"), h.P(g.Text(e.Quote))),
				h.FigCaption(
					revealSlot(e.Reveal, "title"),
					h.Span(
						h.Class("feedback__rating"),
						g.Attr("aria-label", strconv.Itoa(e.Rating)+" out of 5"),
						g.Text(strings.Repeat("★", e.Rating)+strings.Repeat("☆", 5-e.Rating)),
					),
					h.Strong(g.Text(e.Author)),
					g.If(e.Location != "", h.Span(g.Text(", "+e.Location))),
				),
			)
		}),
	)
}

// MapEmbeds renders map iframes.
func MapEmbeds(maps []viewmodel.MapEmbed) g.Node {
	return h.Div(
		h.Class("maps"),
		g.Map(maps, func(m viewmodel.MapEmbed) g.Node {
			return h.Figure(
				h.Class("maps__item"),
				g.If(m.ID != "", h.ID("map-"+m.ID)),
				g.El("iframe",
					h.Src(m.URL),
					h.Title(m.Title),
					g.Attr("loading", "lazy"),
					g.Attr("referrerpolicy", "no-referrer"),
					h.Width("600"),
					h.Height("400"),
				),
				h.FigCaption(g.Text(m.Title)),
			)
		}),
	)
}

// TeamGrid renders the about page team members.
func TeamGrid(members []viewmodel.Member) g.Node {
	return h.Div(
		h.Class("team"),
		g.Map(members, func(m viewmodel.Member) g.Node {
			return h.Article(
				h.Class("team__member"),
				revealRoot(m.Reveal),
				h.Div(
					h.Class("team__photo"),
					revealSlot(m.Reveal, "media"),
					g.If(m.Photo != "", h.Img(h.Src(m.Photo), h.Alt(m.Name))),
					g.If(m.Photo == "", h.Span(h.Class("team__initials"), g.Attr("aria-hidden", "true"), g.Text(m.Initials))),
				),
				h.H3(revealSlot(m.Reveal, "title"), g.Text(m.Name)),
				h.P(h.Class("team__role"), g.Text(m.Role)),
				h.P(revealSlot(m.Reveal, "description"), g.Text(m.Bio)),
			)
		}),
	)
}
