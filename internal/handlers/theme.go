package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"tripable/internal/theme"
)

type ThemeHandler struct {
	site *Site
}

func NewThemeHandler(site *Site) *ThemeHandler {
	return &ThemeHandler{site: site}
}

// RegisterRoutes mounts the state-changing theme endpoints.
func (h *ThemeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/theme", func(r chi.Router) {
		r.Post("/toggle", h.toggle)
		r.Post("/preference", h.preference)
		r.Post("/system", h.system)
	})
}

// RegisterStream mounts the long-lived SSE endpoint. It must sit outside
// any request timeout middleware.
func (h *ThemeHandler) RegisterStream(r chi.Router) {
	r.Get("/theme/stream", h.stream)
}

func (h *ThemeHandler) toggle(w http.ResponseWriter, r *http.Request) {
	info := theme.FromContext(r.Context())
	st := h.site.Theme.Toggle(info.Visitor)
	theme.SetPreferenceCookie(w, st.Preference)
	h.respond(w, r, st)
}

func (h *ThemeHandler) preference(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	pref, err := theme.ParsePreference(r.FormValue("preference"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	info := theme.FromContext(r.Context())
	st := h.site.Theme.SetPreference(info.Visitor, pref)
	theme.SetPreferenceCookie(w, st.Preference)
	h.respond(w, r, st)
}

func (h *ThemeHandler) system(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	mode, ok := theme.ParseMode(r.FormValue("mode"))
	if !ok {
		http.Error(w, "mode must be light or dark", http.StatusBadRequest)
		return
	}
	info := theme.FromContext(r.Context())
	h.site.Theme.SetSystem(info.Visitor, mode)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ThemeHandler) respond(w http.ResponseWriter, r *http.Request, st theme.State) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, map[string]string{
			"mode":       string(st.Resolve()),
			"preference": string(st.Preference),
		})
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns the same-site path the request came from, or "/".
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

func (h *ThemeHandler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	info := theme.FromContext(r.Context())
	sub, cancel := h.site.Theme.Subscribe(info.Visitor)
	defer cancel()

	writeSSE(w, "theme", string(h.site.Theme.State(info.Visitor).Resolve()))
	flusher.Flush()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case mode, ok := <-sub:
			if !ok {
				return
			}
			writeSSE(w, "theme", string(mode))
			flusher.Flush()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}
