// Package ui exposes the navigation state of the workspace: the sidebar, the
// active view and the current project.
package ui

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

type StateResponse struct {
	SidebarOpen      bool         `json:"sidebarOpen"`
	CurrentView      store.View   `json:"currentView"`
	CurrentProjectID *string      `json:"currentProjectId"`
	Views            []store.View `json:"views"`
}

type SidebarDTO struct {
	Open *bool `json:"open"`
}

type ViewDTO struct {
	View store.View `json:"view"`
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) state() StateResponse {
	res := StateResponse{
		SidebarOpen: h.store.SidebarOpen(),
		CurrentView: h.store.CurrentView(),
		Views:       store.AllViews,
	}
	if p := h.store.CurrentProject(); p != nil {
		res.CurrentProjectID = &p.ID
	}
	return res
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.state())
}

// SetSidebar sets the sidebar flag. An empty body toggles it.
func (h *Handler) SetSidebar(w http.ResponseWriter, r *http.Request) {
	var dto SidebarDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			config.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	open := !h.store.SidebarOpen()
	if dto.Open != nil {
		open = *dto.Open
	}
	h.store.SetSidebarOpen(open)
	config.JSON(w, http.StatusOK, h.state())
}

func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	var dto ViewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.store.SetCurrentView(dto.View) {
		config.Error(w, http.StatusBadRequest, "unknown view")
		return
	}
	config.JSON(w, http.StatusOK, h.state())
}

// CloseProject leaves the workspace without touching the project.
func (h *Handler) CloseProject(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCurrentProject()
	config.JSON(w, http.StatusOK, h.state())
}
