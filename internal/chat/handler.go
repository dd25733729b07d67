package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/generation"
	"github.com/saulo-duarte/memento/internal/store"
)

type Handler struct {
	store     *store.Store
	assistant generation.Service
}

func NewHandler(st *store.Store, assistant generation.Service) *Handler {
	return &Handler{store: st, assistant: assistant}
}

// List returns the whole log, or one project's conversation with ?projectId=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("projectId"); id != "" {
		config.JSON(w, http.StatusOK, h.store.ProjectChat(id))
		return
	}
	config.JSON(w, http.StatusOK, h.store.ChatMessages())
}

// Send posts a user message. Without an explicit project the message joins the
// current project's conversation.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID := ""
	if dto.ProjectID != nil {
		projectID = *dto.ProjectID
	} else if p := h.store.CurrentProject(); p != nil {
		projectID = p.ID
	}
	if projectID != "" {
		if _, ok := h.store.Project(projectID); !ok {
			config.Error(w, http.StatusNotFound, store.ErrProjectNotFound.Error())
			return
		}
	}

	msg, err := h.assistant.Ask(r.Context(), projectID, dto.Content)
	if errors.Is(err, generation.ErrEmptyMessage) {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to send chat message")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusAccepted, msg)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("projectId"); id != "" {
		h.store.ClearProjectChat(id)
	} else {
		h.store.ClearChat()
	}
	w.WriteHeader(http.StatusNoContent)
}
