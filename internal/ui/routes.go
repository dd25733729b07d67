package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/sidebar", h.SetSidebar)
	r.Put("/view", h.SetView)
	r.Delete("/project", h.CloseProject)
	return r
}
