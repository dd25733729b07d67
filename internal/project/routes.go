package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves the project collection. Each workspace func registers its
// own endpoints under /{projectID}.
func Routes(h *Handler, workspace ...func(r chi.Router)) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)

	r.Route("/{projectID}", func(r chi.Router) {
		r.Get("/", h.Open)
		r.Patch("/", h.Update)
		r.Delete("/", h.Delete)

		for _, register := range workspace {
			register(r)
		}
	})

	return r
}
