package dashboard

import (
	"net/http"

	"github.com/saulo-duarte/memento/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Stats(r.Context(), r.URL.Query().Get("q")))
}
