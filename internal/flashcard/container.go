package flashcard

import "github.com/saulo-duarte/memento/internal/store"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(st *store.Store) *Container {
	service := NewService(st)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
