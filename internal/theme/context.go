package theme

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// PreferenceCookie persists the explicit preference across sessions.
	PreferenceCookie = "tripable_theme"
	// VisitorCookie identifies the browser so tabs share one session.
	VisitorCookie = "tripable_visitor"
	// ClientHint is the OS color scheme request header.
	ClientHint = "Sec-CH-Prefers-Color-Scheme"
)

type ctxKey struct{}

// Info is what views need to know about the theme of a request.
type Info struct {
	Visitor    string
	Mode       Mode
	Preference Preference
}

// WithInfo returns ctx carrying info.
func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// FromContext returns the request's theme, light when none was injected.
func FromContext(ctx context.Context) Info {
	if info, ok := ctx.Value(ctxKey{}).(Info); ok {
		return info
	}
	return Info{Mode: Light, Preference: PreferSystem}
}

// Middleware resolves the visitor's theme once per request and injects it
// into the request context.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitor := VisitorID(w, r)
		pref := PreferSystem
		if c, err := r.Cookie(PreferenceCookie); err == nil {
			if p, err := ParsePreference(c.Value); err == nil {
				pref = p
			}
		}
		system, _ := ParseMode(r.Header.Get(ClientHint))
		st := s.Seed(visitor, pref, system)

		w.Header().Add("Accept-CH", ClientHint)
		w.Header().Add("Vary", ClientHint)
		ctx := WithInfo(r.Context(), Info{
			Visitor:    visitor,
			Mode:       st.Resolve(),
			Preference: st.Preference,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VisitorID returns the visitor cookie, issuing a new one if missing.
func VisitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
	// Later reads in the same request see the new id.
	r.AddCookie(&http.Cookie{Name: VisitorCookie, Value: id})
	return id
}

// SetPreferenceCookie persists pref for a year.
func SetPreferenceCookie(w http.ResponseWriter, pref Preference) {
	http.SetCookie(w, &http.Cookie{
		Name:     PreferenceCookie,
		Value:    string(pref),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
}
