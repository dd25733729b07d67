package generation

import (
	"github.com/saulo-duarte/memento/internal/store"
)

type GenerationContainer struct {
	Service Service
	Handler *Handler
}

func NewGenerationContainer(st *store.Store, delays Delays) *GenerationContainer {
	provider := NewMockProvider(st.NewID)
	service := NewService(st, provider, delays)
	handler := NewHandler(service)

	return &GenerationContainer{
		Service: service,
		Handler: handler,
	}
}
