package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tripable/internal/forms"
	"tripable/internal/viewmodel"
	"tripable/pkg/reveal"
	"tripable/views/pages"
)

const comingSoon = "Thanks! Accounts open with our public launch. We will email you when you can sign in."

type FormsHandler struct {
	site *Site
}

func NewFormsHandler(site *Site) *FormsHandler {
	return &FormsHandler{site: site}
}

func (h *FormsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/contact", h.contactPage)
	r.Post("/contact", h.submitContact)
	r.Get("/login", h.loginPage)
	r.Post("/login", h.submitLogin)
	r.Get("/register", h.registerPage)
	r.Post("/register", h.submitRegister)
}

func (h *FormsHandler) formPage(r *http.Request, title, intro string, form viewmodel.Form) viewmodel.FormPage {
	return viewmodel.FormPage{
		Page:  h.site.page(r, title, viewmodel.HeaderSolid),
		Intro: h.site.section("", title, intro, reveal.DirectionBottom),
		Form:  form,
	}
}

func (h *FormsHandler) contactPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.ContactPage(h.contactData(r, viewmodel.Form{Action: "/contact"})))
}

func (h *FormsHandler) contactData(r *http.Request, form viewmodel.Form) viewmodel.FormPage {
	site := h.site.Content.Current().Site
	return h.formPage(r, "Contact", "Questions about a destination or a partnership? Write to us at "+site.Email+" or use the form below.", form)
}

func (h *FormsHandler) submitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := forms.Contact{
		Name:    r.FormValue("name"),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: r.FormValue("message"),
	}
	form := viewmodel.Form{
		Action: "/contact",
		Values: map[string]string{"name": input.Name, "email": input.Email, "message": input.Message},
	}
	msg, err := h.site.Inbox.Submit(input, h.site.Now())
	if status, ok := h.applyErrors(&form, err); !ok {
		renderStatus(w, r, status, pages.ContactPage(h.contactData(r, form)))
		return
	}
	h.site.Logger.Debug("contact stored", zap.String("id", msg.ID))
	form.Values = nil
	form.Notice = "Thanks, " + msg.Name + ". We will reply within two working days."
	render(w, r, pages.ContactPage(h.contactData(r, form)))
}

func (h *FormsHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.loginView(r, viewmodel.Form{Action: "/login"}))
}

func (h *FormsHandler) loginView(r *http.Request, form viewmodel.Form) templ.Component {
	return pages.LoginPage(h.formPage(r, "Sign in", "Save destinations and routes to your trip board.", form))
}

func (h *FormsHandler) submitLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := forms.Login{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	form := viewmodel.Form{Action: "/login", Values: map[string]string{"email": input.Email}}
	if status, ok := h.applyErrors(&form, input.Validate()); !ok {
		renderStatus(w, r, status, h.loginView(r, form))
		return
	}
	form.Notice = comingSoon
	render(w, r, h.loginView(r, form))
}

func (h *FormsHandler) registerPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.registerView(r, viewmodel.Form{Action: "/register"}))
}

func (h *FormsHandler) registerView(r *http.Request, form viewmodel.Form) templ.Component {
	return pages.RegisterPage(h.formPage(r, "Create an account", "Join the beta and help us map accessible travel.", form))
}

func (h *FormsHandler) submitRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := forms.Registration{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Confirm:  r.FormValue("confirm"),
	}
	form := viewmodel.Form{
		Action: "/register",
		Values: map[string]string{"name": input.Name, "email": input.Email},
	}
	if status, ok := h.applyErrors(&form, input.Validate()); !ok {
		renderStatus(w, r, status, h.registerView(r, form))
		return
	}
	h.site.Logger.Info("beta registration", zap.String("email", input.Email))
	form.Notice = comingSoon
	render(w, r, h.registerView(r, form))
}

// applyErrors copies validation errors into form. It reports false with the
// status to respond with when err is non-nil.
func (h *FormsHandler) applyErrors(form *viewmodel.Form, err error) (int, bool) {
	if err == nil {
		return http.StatusOK, true
	}
	var fe forms.FieldErrors
	if errors.As(err, &fe) {
		form.Errors = fe
		return http.StatusUnprocessableEntity, false
	}
	h.site.Logger.Error("form submission failed", zap.Error(err))
	form.Notice = "Something went wrong. Please try again."
	return http.StatusInternalServerError, false
}
