package user

import (
	"net/http"
	"strconv"

	"github.com/saulo-duarte/memento/internal/auth"
	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

type UserResponse struct {
	store.User
	Projects int `json:"projects"`
}

type Handler struct {
	store  *store.Store
	logout http.HandlerFunc
}

// NewHandler reuses the auth logout so that deleting the account clears the
// session cookie the same way.
func NewHandler(st *store.Store, authHandler *auth.Handler) *Handler {
	return &Handler{store: st, logout: authHandler.Logout}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u := h.store.User()
	if u == nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	config.JSON(w, http.StatusOK, UserResponse{User: *u, Projects: len(h.store.Projects())})
}

// DeleteUser signs the user out after an explicit ?confirm=true. Projects and
// chat history stay on this device.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); !ok {
		config.Error(w, http.StatusConflict, "add ?confirm=true to delete the account")
		return
	}
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		config.WithContext(r.Context()).WithField("user_id", claims.UserID).Info("Account deleted")
	}
	h.logout(w, r)
}
