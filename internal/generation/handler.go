package generation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

const maxUploadSize = 100 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	projectID := chi.URLParam(r, "projectID")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		config.Error(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	audio, err := h.service.UploadAudio(r.Context(), projectID, header.Filename, header.Header.Get("Content-Type"), header.Size)
	switch {
	case errors.Is(err, ErrNotAudio):
		config.Error(w, http.StatusBadRequest, "please select a valid audio file")
		return
	case errors.Is(err, store.ErrProjectNotFound):
		config.Error(w, http.StatusNotFound, "project not found")
		return
	case err != nil:
		log.WithError(err).Error("Failed to upload audio")
		config.Error(w, http.StatusInternalServerError, "failed to upload audio")
		return
	}

	config.JSON(w, http.StatusAccepted, UploadResponse{ProjectID: projectID, Audio: audio, Status: "transcribing"})
}

func (h *Handler) SaveTranscription(w http.ResponseWriter, r *http.Request) {
	var req TranscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.service.SaveTranscription(r.Context(), chi.URLParam(r, "projectID"), req.Text)
	if errors.Is(err, store.ErrProjectNotFound) {
		config.Error(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to save transcription")
		config.Error(w, http.StatusInternalServerError, "failed to save transcription")
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.GenerateContent(r.Context(), chi.URLParam(r, "projectID"))
	switch {
	case errors.Is(err, ErrEmptyTranscription):
		config.Error(w, http.StatusConflict, "add a transcription first")
		return
	case errors.Is(err, store.ErrProjectNotFound):
		config.Error(w, http.StatusNotFound, "project not found")
		return
	case err != nil:
		config.WithContext(r.Context()).WithError(err).Error("Failed to generate content")
		config.Error(w, http.StatusInternalServerError, "failed to generate content")
		return
	}
	config.JSON(w, http.StatusCreated, res)
}
