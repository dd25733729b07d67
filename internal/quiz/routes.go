package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListQuizzes)
	r.Post("/", h.CreateQuiz)
	r.Get("/{quizID}", h.GetQuiz)
	r.Delete("/{quizID}", h.DeleteQuiz)
	r.Post("/{quizID}/complete", h.CompleteQuiz)
	r.Post("/{quizID}/questions", h.AddQuestion)
	r.Delete("/{quizID}/questions/{questionID}", h.RemoveQuestion)
	return r
}
