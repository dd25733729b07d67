package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

type LoginRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	User  store.User `json:"user"`
	Token string     `json:"token"`
}

type Handler struct {
	store  *store.Store
	ttl    time.Duration
	secure bool
}

func NewHandler(st *store.Store, ttl time.Duration, secure bool) *Handler {
	return &Handler{store: st, ttl: ttl, secure: secure}
}

func (h *Handler) setCookie(w http.ResponseWriter, value string, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if h.secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: sameSite,
	})
}

// Login trusts the identity in the request body. There is no credential check.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user := store.User{
		ID:    strings.TrimSpace(req.ID),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	}
	if user.Email == "" {
		config.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	if user.ID == "" {
		user.ID = h.store.NewID()
	}

	token, err := GenerateJWT(user.ID, user.Name, user.Email, h.ttl)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		config.Error(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	h.store.Login(user)
	h.setCookie(w, token, int(h.ttl.Seconds()))
	log.WithField("user_id", user.ID).Info("User logged in")

	config.JSON(w, http.StatusOK, LoginResponse{User: user, Token: token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	h.setCookie(w, "", -1)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
