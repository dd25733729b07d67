package flashcard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, ErrInvalidFlashcard), errors.Is(err, ErrInvalidDifficulty):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrProjectNotFound):
		config.Error(w, http.StatusNotFound, "project not found")
	case errors.Is(err, ErrFlashcardNotFound):
		config.Error(w, http.StatusNotFound, "flashcard not found")
	default:
		config.WithContext(r.Context()).WithError(err).Error("Failed to " + action)
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.List(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err, "list flashcards")
		return
	}
	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateFlashcardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.service.Create(r.Context(), chi.URLParam(r, "projectID"), dto)
	if err != nil {
		writeError(w, r, err, "create flashcard")
		return
	}
	config.JSON(w, http.StatusCreated, card)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateFlashcardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.service.Update(r.Context(), chi.URLParam(r, "projectID"), chi.URLParam(r, "cardID"), dto)
	if err != nil {
		writeError(w, r, err, "update flashcard")
		return
	}
	config.JSON(w, http.StatusOK, card)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "projectID"), chi.URLParam(r, "cardID")); err != nil {
		writeError(w, r, err, "delete flashcard")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
