package dashboard

import (
	"github.com/saulo-duarte/memento/internal/project"
	"github.com/saulo-duarte/memento/internal/store"
)

type DashboardContainer struct {
	Handler *Handler
}

func NewDashboardContainer(st *store.Store, projects project.Service) *DashboardContainer {
	service := NewService(st, projects)
	handler := NewHandler(service)

	return &DashboardContainer{
		Handler: handler,
	}
}
