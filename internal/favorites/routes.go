package favorites

import (
	"github.com/go-chi/chi/v5"

	"github.com/EmpoweredVote/APOD-Backend/internal/middleware"
)

func (h *Handler) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Post("/favorite", h.Toggle)
		r.Get("/favorites", h.List)
	})
}
