package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/memento/internal/auth"
	"github.com/saulo-duarte/memento/internal/chat"
	"github.com/saulo-duarte/memento/internal/dashboard"
	"github.com/saulo-duarte/memento/internal/flashcard"
	"github.com/saulo-duarte/memento/internal/generation"
	"github.com/saulo-duarte/memento/internal/middlewares"
	"github.com/saulo-duarte/memento/internal/project"
	"github.com/saulo-duarte/memento/internal/quiz"
	"github.com/saulo-duarte/memento/internal/ui"
	"github.com/saulo-duarte/memento/internal/user"
)

type RouterConfig struct {
	AllowedOrigins    []string
	Session           auth.Session
	AuthHandler       *auth.Handler
	UserHandler       *user.Handler
	ProjectHandler    *project.Handler
	FlashcardHandler  *flashcard.Handler
	QuizHandler       *quiz.Handler
	GenerationHandler *generation.Handler
	ChatHandler       *chat.Handler
	UIHandler         *ui.Handler
	DashboardHandler  *dashboard.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(cfg.Session))

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/projects", project.Routes(cfg.ProjectHandler,
			func(r chi.Router) { r.Mount("/flashcards", flashcard.Routes(cfg.FlashcardHandler)) },
			func(r chi.Router) { r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler)) },
			func(r chi.Router) { generation.Routes(r, cfg.GenerationHandler) },
		))
		r.Mount("/chat", chat.Routes(cfg.ChatHandler))
		r.Mount("/ui", ui.Routes(cfg.UIHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
	})
	return r
}
