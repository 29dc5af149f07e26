package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"tripable/internal/viewmodel"
)

// RevealGate is the class that lets the stylesheet hide elements awaiting
// their reveal.
const RevealGate = "reveal-ready"

// revealGate opts the page into hidden initial states before first paint and
// backs out at load unless reveal.js finished its setup, so a missing or
// broken script never leaves content invisible.
const revealGate = `(function(d){d.documentElement.classList.add("` + RevealGate + `");` +
	`addEventListener("load",function(){if(!window.tripableReveal){d.documentElement.classList.remove("` + RevealGate + `")}})})(document);`

// Document is the HTML shell: head, shared header and footer around body.
func Document(p viewmodel.Page, body ...g.Node) g.Node {
	title := p.SiteName
	if p.Title != "" {
		title = p.Title + " · " + p.SiteName
	}
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			classes("theme-"+p.Theme, darkClass(p.Theme)),
			g.Attr("data-theme", p.Theme),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(p.Description)),
				h.Meta(h.Name("color-scheme"), h.Content("light dark")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("icon"), h.Href("/static/img/logo.svg")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(g.Raw(revealGate)),
				h.Script(h.Src("/static/js/theme.js"), h.Defer()),
				h.Script(h.Src("/static/js/reveal.js"), h.Defer()),
			),
			h.Body(
				PageHeader(p),
				h.Main(h.ID("main"), g.Group(body)),
				PageFooter(p),
			),
		),
	)
}

func darkClass(theme string) string {
	if theme == "dark" {
		return "dark"
	}
	return ""
}

// PageHeader is the single site header; the variant decides whether it
// overlays the hero or sits as a solid bar.
func PageHeader(p viewmodel.Page) g.Node {
	variant := p.Header
	if variant == "" {
		variant = viewmodel.HeaderSolid
	}
	return h.Header(
		classes("site-header", "site-header--"+string(variant)),
		h.A(h.Class("skip-link"), h.Href("#main"), g.Text("Skip to content")),
		h.A(
			h.Class("brand"),
			h.Href("/"),
			h.Img(h.Src("/static/img/logo.svg"), h.Alt(""), h.Width("36"), h.Height("36")),
			h.Span(g.Text(p.SiteName)),
		),
		h.Nav(
			g.Attr("aria-label", "Main"),
			h.Ul(
				g.Map(p.Nav, func(item viewmodel.NavItem) g.Node {
					return h.Li(h.A(
						h.Href(item.Href),
						g.If(item.Active, g.Group([]g.Node{h.Class("active"), g.Attr("aria-current", "page")})),
						g.Text(item.Label),
					))
				}),
			),
		),
		ThemeToggle(p.Theme),
	)
}

// ThemeToggle posts to the toggle endpoint; theme.js upgrades it to fetch.
func ThemeToggle(theme string) g.Node {
	label := "Switch to dark theme"
	if theme == "dark" {
		label = "Switch to light theme"
	}
	return h.Form(
		h.Class("theme-toggle"),
		h.Method("post"),
		h.Action("/theme/toggle"),
		g.Attr("data-theme-toggle", ""),
		h.Button(
			h.Type("submit"),
			g.Attr("aria-label", label),
			h.Span(h.Class("theme-toggle__icon"), g.Attr("aria-hidden", "true")),
		),
	)
}

// PageFooter is the single site footer.
func PageFooter(p viewmodel.Page) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("site-footer__brand"),
			h.Strong(g.Text(p.SiteName)),
			h.P(g.Text(p.Tagline)),
		),
		h.Div(
			h.Class("site-footer__contact"),
			g.If(p.Email != "", h.A(h.Href("mailto:"+p.Email), g.Text(p.Email))),
			g.If(p.Phone != "", h.P(g.Text(p.Phone))),
			g.If(p.Address != "", h.P(g.Text(p.Address))),
		),
		h.P(h.Class("site-footer__legal"), g.Text("© "+strconv.Itoa(p.Year)+" "+p.SiteName)),
	)
}
