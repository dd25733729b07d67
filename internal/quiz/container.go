package quiz

import "github.com/saulo-duarte/memento/internal/store"

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(st *store.Store) *QuizContainer {
	service := NewService(st)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
