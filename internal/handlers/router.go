package handlers

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tripable/internal/logging"
)

// NewRouter mounts every route. static is served under /static.
func NewRouter(site *Site, static fs.FS, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(site.Logger))
	r.Use(middleware.Recoverer)

	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(static))))

	pagesHandler := NewPagesHandler(site)
	formsHandler := NewFormsHandler(site)
	themeHandler := NewThemeHandler(site)

	r.Group(func(r chi.Router) {
		r.Use(site.Theme.Middleware)
		themeHandler.RegisterStream(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(timeout))
			pagesHandler.RegisterRoutes(r)
			formsHandler.RegisterRoutes(r)
			themeHandler.RegisterRoutes(r)
		})
	})
	r.NotFound(site.Theme.Middleware(http.HandlerFunc(pagesHandler.NotFound)).ServeHTTP)
	return r
}
