package dashboard

import (
	"context"
	"math"

	"github.com/saulo-duarte/memento/internal/project"
	"github.com/saulo-duarte/memento/internal/store"
)

const recentLimit = 3

type Service interface {
	Stats(ctx context.Context, query string) DashboardStatsResponse
}

type service struct {
	store    *store.Store
	projects project.Service
}

func NewService(st *store.Store, projects project.Service) Service {
	return &service{store: st, projects: projects}
}

// Stats aggregates over every project. Results is the project list filtered by
// query, while the counters always cover the whole collection.
func (s *service) Stats(ctx context.Context, query string) DashboardStatsResponse {
	all := s.projects.List(ctx, "")

	res := DashboardStatsResponse{
		Stats:          s.store.Stats(),
		RecentProjects: all[:min(recentLimit, len(all))],
		Results:        s.projects.List(ctx, query),
	}
	for _, p := range all {
		switch p.Status {
		case project.NOT_INITIALIZED:
			res.Status.NotInitialized++
		case project.IN_PROGRESS:
			res.Status.InProgress++
		case project.COMPLETED:
			res.Status.Completed++
		}
	}

	total, n := 0, 0
	for _, p := range s.store.Projects() {
		for _, q := range p.Quizzes {
			if q.Score != nil {
				total += *q.Score
				n++
			}
		}
	}
	if n > 0 {
		avg := int(math.Round(float64(total) / float64(n)))
		res.AverageScore = &avg
	}
	return res
}
