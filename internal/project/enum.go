package project

import (
	"strings"

	"github.com/saulo-duarte/memento/internal/store"
)

type ProjectStatus string

const (
	NOT_INITIALIZED ProjectStatus = "NOT_INITIALIZED"
	IN_PROGRESS     ProjectStatus = "IN_PROGRESS"
	COMPLETED       ProjectStatus = "COMPLETED"
)

var AllStatuses = []ProjectStatus{
	NOT_INITIALIZED,
	IN_PROGRESS,
	COMPLETED,
}

func (s ProjectStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusOf derives the study progress of a project. A project is completed
// once it has quizzes and every one of them has been taken.
func StatusOf(p store.Project) ProjectStatus {
	hasTranscription := p.Transcription != nil && strings.TrimSpace(*p.Transcription) != ""
	if p.AudioFile == nil && !hasTranscription && len(p.Flashcards) == 0 && len(p.Quizzes) == 0 {
		return NOT_INITIALIZED
	}
	if len(p.Quizzes) == 0 {
		return IN_PROGRESS
	}
	for _, q := range p.Quizzes {
		if !q.Completed() {
			return IN_PROGRESS
		}
	}
	return COMPLETED
}
