package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
	"github.com/EmpoweredVote/APOD-Backend/internal/favorites"
	"github.com/EmpoweredVote/APOD-Backend/internal/gallery"
	"github.com/EmpoweredVote/APOD-Backend/internal/metrics"
	"github.com/EmpoweredVote/APOD-Backend/internal/middleware"
	"github.com/EmpoweredVote/APOD-Backend/internal/views"
)

// Deps are the constructed components the router dispatches to.
type Deps struct {
	Sessions  middleware.SessionFetcher
	Auth      *auth.Handler
	Gallery   *gallery.Handler
	Favorites *favorites.Handler
	// Ready reports whether backing services are reachable; nil means
	// always ready.
	Ready func(ctx context.Context) error
	Log   zerolog.Logger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	r.Get("/readyz", readiness(d.Ready, d.Log))
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", views.Static()))

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(d.Sessions, d.Log))
		d.Gallery.Routes(r)
		d.Auth.Routes(r)
		d.Favorites.Routes(r)
	})

	return r
}

func readiness(ready func(ctx context.Context) error, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				log.Warn().Err(err).Msg("readiness check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("unavailable"))
				return
			}
		}
		w.Write([]byte("ok"))
	}
}
