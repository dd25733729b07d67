package flashcard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{cardID}", h.Update)
	r.Delete("/{cardID}", h.Delete)

	return r
}
