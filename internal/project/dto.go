package project

import (
	"time"

	"github.com/saulo-duarte/memento/internal/store"
	util "github.com/saulo-duarte/memento/internal/utils"
)

type CreateProjectDTO struct {
	Name string `json:"name"`
}

type UpdateProjectDTO struct {
	Name          *string            `json:"name"`
	AudioFile     *string            `json:"audioFile"`
	Transcription *string            `json:"transcription"`
	Flashcards    *[]store.Flashcard `json:"flashcards"`
	Quizzes       *[]store.Quiz      `json:"quizzes"`
}

func (d UpdateProjectDTO) toUpdate() store.ProjectUpdate {
	return store.ProjectUpdate{
		Name:          d.Name,
		AudioFile:     d.AudioFile,
		Transcription: d.Transcription,
		Flashcards:    d.Flashcards,
		Quizzes:       d.Quizzes,
	}
}

type ProjectSummary struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Status         ProjectStatus `json:"status"`
	Flashcards     int           `json:"flashcards"`
	Quizzes        int           `json:"quizzes"`
	HasAudio       bool          `json:"has_audio"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	UpdatedDisplay string        `json:"updated_display"`
}

type ProjectResponse struct {
	store.Project
	Status ProjectStatus `json:"status"`
}

// WorkspaceResponse is what the workspace screen needs to render a project.
type WorkspaceResponse struct {
	Project ProjectResponse     `json:"project"`
	View    store.View          `json:"view"`
	Chat    []store.ChatMessage `json:"chat"`
}

func toSummary(p store.Project) ProjectSummary {
	return ProjectSummary{
		ID:             p.ID,
		Name:           p.Name,
		Status:         StatusOf(p),
		Flashcards:     len(p.Flashcards),
		Quizzes:        len(p.Quizzes),
		HasAudio:       p.AudioFile != nil,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		UpdatedDisplay: util.FormatDisplay(p.UpdatedAt),
	}
}

func toResponse(p store.Project) ProjectResponse {
	return ProjectResponse{Project: p, Status: StatusOf(p)}
}
