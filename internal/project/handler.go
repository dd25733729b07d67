package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

// ListPath is where unknown workspaces send the client back to.
const ListPath = "/projects"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

// List answers the projects matching ?q, optionally narrowed to one ?status.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects := h.service.List(r.Context(), r.URL.Query().Get("q"))

	raw := r.URL.Query().Get("status")
	if raw == "" {
		config.JSON(w, http.StatusOK, projects)
		return
	}
	status := ProjectStatus(raw)
	if !status.IsValid() {
		config.Error(w, http.StatusBadRequest, "unknown status "+raw)
		return
	}
	filtered := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	config.JSON(w, http.StatusOK, filtered)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.service.Create(r.Context(), dto)
	if errors.Is(err, ErrInvalidName) {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to create project")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

// Open selects the project as the current workspace. Unknown ids redirect to
// the project list.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Open(r.Context(), chi.URLParam(r, "projectID"))
	if errors.Is(err, store.ErrProjectNotFound) {
		http.Redirect(w, r, ListPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to open project")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.service.Update(r.Context(), chi.URLParam(r, "projectID"), dto)
	switch {
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrEmptyUpdate):
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, store.ErrProjectNotFound):
		config.Error(w, http.StatusNotFound, "project not found")
		return
	case err != nil:
		log.WithError(err).Error("Failed to update project")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), chi.URLParam(r, "projectID"), confirmed(r))
	switch {
	case errors.Is(err, ErrConfirmationRequired):
		config.Error(w, http.StatusConflict, "add ?confirm=true to delete this project")
		return
	case errors.Is(err, store.ErrProjectNotFound):
		config.Error(w, http.StatusNotFound, "project not found")
		return
	case err != nil:
		config.WithContext(r.Context()).WithError(err).Error("Failed to delete project")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
