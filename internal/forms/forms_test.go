package forms

import (
	"errors"
	"strings"
	"testing"
)

func TestValidEmail(t *testing.T) {
	for _, s := range []string{"ana@example.com", "a.b+c@sub.example.pt"} {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "ana", "ana@localhost", "Ana <ana@example.com>", "ana@@example.com"} {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err %v is not FieldErrors", err)
	}
	return fe
}

func TestRegistration_Validate(t *testing.T) {
	ok := Registration{Name: "Ana", Email: "ana@example.com", Password: "longenough", Confirm: "longenough"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}

	bad := Registration{Email: "nope", Password: "short", Confirm: "other"}
	fe := fieldErrors(t, bad.Validate())
	for _, field := range []string{"name", "email", "password", "confirm"} {
		if fe[field] == "" {
			t.Errorf("missing error for %s", field)
		}
	}
	if !strings.HasPrefix(fe.Error(), "invalid form: confirm:") {
		t.Errorf("Error() = %q, want sorted fields", fe.Error())
	}
}

func TestLogin_Validate(t *testing.T) {
	if err := (Login{Email: "ana@example.com", Password: "x"}).Validate(); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
	fe := fieldErrors(t, Login{}.Validate())
	if len(fe) != 2 {
		t.Errorf("got %d errors, want 2", len(fe))
	}
}

func TestContact_Validate(t *testing.T) {
	if err := (Contact{Name: "Ana", Email: "ana@example.com", Message: "Hi"}).Validate(); err != nil {
		t.Errorf("valid contact rejected: %v", err)
	}
	fe := fieldErrors(t, Contact{Name: "Ana", Email: "ana@example.com", Message: strings.Repeat("x", MaxMessageLength+1)}.Validate())
	if fe["message"] == "" {
		t.Error("overlong message should be rejected")
	}
}
