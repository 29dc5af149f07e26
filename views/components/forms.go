package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"tripable/internal/viewmodel"
)

// Field describes one form input.
type Field struct {
	Name         string
	Label        string
	Type         string
	Autocomplete string
	Multiline    bool
}

// FormView renders a form with inline validation messages.
func FormView(f viewmodel.Form, submit string, fields ...Field) g.Node {
	return h.Form(
		h.Class("form"),
		h.Method("post"),
		h.Action(f.Action),
		g.Attr("novalidate", ""),
		g.If(f.Notice != "", h.P(h.Class("form__notice"), g.Attr("role", "status"), g.Text(f.Notice))),
		g.If(f.HasErrors(), h.P(h.Class("form__summary"), g.Attr("role", "alert"), g.Text("Please fix the highlighted fields."))),
		g.Map(fields, func(fd Field) g.Node { return formField(f, fd) }),
		h.Button(h.Class("button button--primary"), h.Type("submit"), g.Text(submit)),
	)
}

func formField(f viewmodel.Form, fd Field) g.Node {
	id := "field-" + fd.Name
	errID := id + "-error"
	msg := f.Error(fd.Name)
	common := []g.Node{
		h.ID(id),
		h.Name(fd.Name),
		g.If(fd.Autocomplete != "", g.Attr("autocomplete", fd.Autocomplete)),
		g.If(msg != "", g.Group([]g.Node{g.Attr("aria-invalid", "true"), g.Attr("aria-describedby", errID)})),
	}

	var input g.Node
	if fd.Multiline {
		input = h.Textarea(append(common, g.Attr("rows", "5"), g.Text(f.Value(fd.Name)))...)
	} else {
		typ := fd.Type
		if typ == "" {
			typ = "text"
		}
		// Passwords are never echoed back.
		value := f.Value(fd.Name)
		if typ == "password" {
			value = ""
		}
		input = h.Input(append(common, h.Type(typ), h.Value(value))...)
	}

	return h.Div(
		classes("form__field", errorClass(msg)),
		h.Label(h.For(id), g.Text(fd.Label)),
		input,
		g.If(msg != "", h.P(h.Class("form__error"), h.ID(errID), g.Text(msg))),
	)
}

func errorClass(msg string) string {
	if msg == "" {
		return ""
	}
	return "form__field--error"
}
