package auth

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

// Session reports the signed-in user of the store.
type Session interface {
	IsAuthenticated() bool
	User() *store.User
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// AuthMiddleware accepts a request only when it carries a valid token for the
// user currently signed in to the store. A logout invalidates every token.
func AuthMiddleware(session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				config.Error(w, http.StatusUnauthorized, "missing token")
				return
			}

			claims, err := ValidateJWT(tokenStr)
			if err != nil {
				log.WithError(err).Debug("Rejected token")
				config.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			user := session.User()
			if !session.IsAuthenticated() || user == nil || user.ID != claims.UserID {
				config.Error(w, http.StatusUnauthorized, "session ended")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
		})
	}
}
