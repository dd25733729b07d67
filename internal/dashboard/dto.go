package dashboard

import (
	"github.com/saulo-duarte/memento/internal/project"
	"github.com/saulo-duarte/memento/internal/store"
)

type StatusStats struct {
	NotInitialized int `json:"not_initialized"`
	InProgress     int `json:"in_progress"`
	Completed      int `json:"completed"`
}

type DashboardStatsResponse struct {
	Stats          store.Stats              `json:"stats"`
	Status         StatusStats              `json:"status"`
	AverageScore   *int                     `json:"average_score,omitempty"`
	RecentProjects []project.ProjectSummary `json:"recent_projects"`
	Results        []project.ProjectSummary `json:"results"`
}
