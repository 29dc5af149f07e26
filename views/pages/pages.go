// Package pages composes components into full pages.
package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"tripable/internal/viewmodel"
	"tripable/views/components"
)

func HomePage(data viewmodel.HomePage) templ.Component {
	return components.Templ(components.Document(data.Page,
		components.Hero(data.Hero),
		components.AnimatedSection(data.Destinations,
			components.Carousel("Destinations", data.Cards),
		),
		components.AnimatedSection(data.Feedback,
			components.FeedbackList(data.Quotes),
		),
		g.If(len(data.Maps) > 0, components.AnimatedSection(data.MapsSection,
			components.MapEmbeds(data.Maps),
		)),
	))
}

func AboutPage(data viewmodel.AboutPage) templ.Component {
	return components.Templ(components.Document(data.Page,
		components.AnimatedSection(data.Mission,
			components.TeamGrid(data.Team),
		),
	))
}

func ContactPage(data viewmodel.FormPage) templ.Component {
	return components.Templ(components.Document(data.Page,
		components.AnimatedSection(data.Intro,
			components.FormView(data.Form, "Send message",
				components.Field{Name: "name", Label: "Your name", Autocomplete: "name"},
				components.Field{Name: "email", Label: "Email", Type: "email", Autocomplete: "email"},
				components.Field{Name: "message", Label: "How can we help?", Multiline: true},
			),
		),
	))
}

func LoginPage(data viewmodel.FormPage) templ.Component {
	return components.Templ(components.Document(data.Page,
		components.AnimatedSection(data.Intro,
			components.FormView(data.Form, "Sign in",
				components.Field{Name: "email", Label: "Email", Type: "email", Autocomplete: "email"},
				components.Field{Name: "password", Label: "Password", Type: "password", Autocomplete: "current-password"},
			),
			h.P(h.Class("form__alt"), g.Text("New here? "), h.A(h.Href("/register"), g.Text("Create an account"))),
		),
	))
}

func RegisterPage(data viewmodel.FormPage) templ.Component {
	return components.Templ(components.Document(data.Page,
		components.AnimatedSection(data.Intro,
			components.FormView(data.Form, "Create account",
				components.Field{Name: "name", Label: "Name", Autocomplete: "name"},
				components.Field{Name: "email", Label: "Email", Type: "email", Autocomplete: "email"},
				components.Field{Name: "password", Label: "Password", Type: "password", Autocomplete: "new-password"},
				components.Field{Name: "confirm", Label: "Confirm password", Type: "password", Autocomplete: "new-password"},
			),
			h.P(h.Class("form__alt"), g.Text("Already registered? "), h.A(h.Href("/login"), g.Text("Sign in"))),
		),
	))
}

// NotFoundPage is rendered for unknown routes.
func NotFoundPage(page viewmodel.Page) templ.Component {
	return components.Templ(components.Document(page,
		h.Section(
			h.Class("section section--center"),
			h.H1(g.Text("Page not found")),
			h.P(g.Text("The page you were looking for has moved or never existed.")),
			h.A(h.Class("button button--primary"), h.Href("/"), g.Text("Back to the home page")),
		),
	))
}
