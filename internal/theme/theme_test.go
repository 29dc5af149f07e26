package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Resolve(t *testing.T) {
	assert.Equal(t, Light, State{}.Resolve())
	assert.Equal(t, Dark, State{Preference: PreferSystem, System: Dark}.Resolve())
	assert.Equal(t, Light, State{Preference: PreferLight, System: Dark}.Resolve())
	assert.Equal(t, Dark, State{Preference: PreferDark, System: Light}.Resolve())
}

func TestParsePreference(t *testing.T) {
	p, err := ParsePreference("DARK")
	require.NoError(t, err)
	assert.Equal(t, PreferDark, p)

	p, err = ParsePreference("")
	require.NoError(t, err)
	assert.Equal(t, PreferSystem, p)

	_, err = ParsePreference("sepia")
	assert.Error(t, err)
}

func TestService_TogglePublishes(t *testing.T) {
	s := NewService(time.Hour, nil)
	ch, cancel := s.Subscribe("v1")
	defer cancel()

	st := s.Toggle("v1")
	assert.Equal(t, PreferDark, st.Preference)
	select {
	case mode := <-ch:
		assert.Equal(t, Dark, mode)
	case <-time.After(time.Second):
		t.Fatal("no theme event published")
	}

	st = s.Toggle("v1")
	assert.Equal(t, Light, st.Resolve())
	assert.Equal(t, Light, <-ch)
}

func TestService_SetSystemOnlyAffectsSystemFollowers(t *testing.T) {
	s := NewService(time.Hour, nil)
	ch, cancel := s.Subscribe("follower")
	defer cancel()

	s.SetSystem("follower", Dark)
	assert.Equal(t, Dark, <-ch)

	s.SetPreference("pinned", PreferLight)
	pinned, cancelPinned := s.Subscribe("pinned")
	defer cancelPinned()
	st := s.SetSystem("pinned", Dark)
	assert.Equal(t, Light, st.Resolve())
	select {
	case mode := <-pinned:
		t.Fatalf("unexpected event %q for pinned visitor", mode)
	default:
	}
}

func TestService_SeedDoesNotOverrideSession(t *testing.T) {
	s := NewService(time.Hour, nil)
	s.Seed("v1", PreferSystem, Light)
	s.Toggle("v1")
	st := s.Seed("v1", PreferSystem, Light)
	assert.Equal(t, PreferDark, st.Preference)
}

func TestMiddleware_InjectsTheme(t *testing.T) {
	s := NewService(time.Hour, nil)
	var got Info
	h := s.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ClientHint, "dark")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, Dark, got.Mode)
	assert.NotEmpty(t, got.Visitor)
	assert.Equal(t, 1, s.Visitors())

	var visitorCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == VisitorCookie {
			visitorCookie = c
		}
	}
	require.NotNil(t, visitorCookie)
	assert.Equal(t, got.Visitor, visitorCookie.Value)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(visitorCookie)
	req.AddCookie(&http.Cookie{Name: PreferenceCookie, Value: "light"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, visitorCookie.Value, got.Visitor)
	assert.Equal(t, 1, s.Visitors())
}

func TestFromContext_Default(t *testing.T) {
	info := FromContext(context.Background())
	assert.Equal(t, Light, info.Mode)
}
