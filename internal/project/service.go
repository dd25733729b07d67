package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

var (
	ErrInvalidName          = errors.New("project name must not be empty")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrEmptyUpdate          = errors.New("no fields to update")
)

type Service interface {
	List(ctx context.Context, query string) []ProjectSummary
	Create(ctx context.Context, dto CreateProjectDTO) (ProjectResponse, error)
	Open(ctx context.Context, id string) (WorkspaceResponse, error)
	Update(ctx context.Context, id string, dto UpdateProjectDTO) (ProjectResponse, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type service struct {
	store *store.Store
}

func NewService(st *store.Store) Service {
	return &service{store: st}
}

func (s *service) List(_ context.Context, query string) []ProjectSummary {
	projects := s.store.SearchProjects(query)
	out := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		out = append(out, toSummary(p))
	}
	return out
}

// Create adds a project and makes it the current one.
func (s *service) Create(ctx context.Context, dto CreateProjectDTO) (ProjectResponse, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return ProjectResponse{}, ErrInvalidName
	}
	p := s.store.CreateProject(name)
	config.WithContext(ctx).WithFields(logrus.Fields{"project_id": p.ID, "name": name}).Info("Project created")
	return toResponse(p), nil
}

func (s *service) Open(_ context.Context, id string) (WorkspaceResponse, error) {
	if !s.store.SetCurrentProject(id) {
		return WorkspaceResponse{}, fmt.Errorf("open project %s: %w", id, store.ErrProjectNotFound)
	}
	p, ok := s.store.Project(id)
	if !ok {
		return WorkspaceResponse{}, fmt.Errorf("open project %s: %w", id, store.ErrProjectNotFound)
	}
	return WorkspaceResponse{
		Project: toResponse(p),
		View:    s.store.CurrentView(),
		Chat:    s.store.ProjectChat(id),
	}, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateProjectDTO) (ProjectResponse, error) {
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return ProjectResponse{}, ErrInvalidName
		}
		dto.Name = &name
	}
	u := dto.toUpdate()
	if u.IsEmpty() {
		return ProjectResponse{}, ErrEmptyUpdate
	}

	p, ok := s.store.UpdateProject(id, u)
	if !ok {
		return ProjectResponse{}, fmt.Errorf("update project %s: %w", id, store.ErrProjectNotFound)
	}
	config.WithContext(ctx).WithField("project_id", id).Debug("Project updated")
	return toResponse(p), nil
}

// Delete removes a project once the caller has confirmed. Its chat messages
// stay in the log.
func (s *service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if !s.store.DeleteProject(id) {
		return fmt.Errorf("delete project %s: %w", id, store.ErrProjectNotFound)
	}
	config.WithContext(ctx).WithField("project_id", id).Info("Project deleted")
	return nil
}
