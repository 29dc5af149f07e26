// Package forms validates the site's public forms.
package forms

import (
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 8

// FieldErrors maps a field name to its message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidEmail reports whether s is a bare email address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

// Login holds the sign-in form.
type Login struct {
	Email    string
	Password string
}

// Validate returns FieldErrors when the form is incomplete.
func (l Login) Validate() error {
	errs := FieldErrors{}
	if !ValidEmail(l.Email) {
		errs["email"] = "Enter a valid email address."
	}
	if l.Password == "" {
		errs["password"] = "Enter your password."
	}
	return errs.orNil()
}

// Registration holds the sign-up form.
type Registration struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

func (r Registration) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Tell us your name."
	}
	if !ValidEmail(r.Email) {
		errs["email"] = "Enter a valid email address."
	}
	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		errs["password"] = "Use at least 8 characters."
	}
	if r.Confirm != r.Password {
		errs["confirm"] = "Passwords do not match."
	}
	return errs.orNil()
}

// Contact holds the contact form.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// MaxMessageLength caps contact messages.
const MaxMessageLength = 4000

func (c Contact) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "Tell us your name."
	}
	if !ValidEmail(c.Email) {
		errs["email"] = "Enter a valid email address."
	}
	msg := strings.TrimSpace(c.Message)
	switch {
	case msg == "":
		errs["message"] = "Write a short message."
	case utf8.RuneCountInString(msg) > MaxMessageLength:
		errs["message"] = "Keep your message under 4000 characters."
	}
	return errs.orNil()
}
