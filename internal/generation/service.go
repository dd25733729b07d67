package generation

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

var (
	ErrNotAudio           = errors.New("file is not an audio file")
	ErrEmptyTranscription = errors.New("transcription is empty")
	ErrEmptyMessage       = errors.New("message is empty")
)

const workTimeout = 30 * time.Second

type Delays struct {
	Transcription time.Duration
	Reply         time.Duration
}

type Service interface {
	UploadAudio(ctx context.Context, projectID, filename, contentType string, size int64) (AudioFile, error)
	SaveTranscription(ctx context.Context, projectID, text string) (store.Project, error)
	GenerateContent(ctx context.Context, projectID string) (GenerateResponse, error)
	Ask(ctx context.Context, projectID, content string) (store.ChatMessage, error)
	Wait()
}

type service struct {
	store    *store.Store
	provider Provider
	delays   Delays
	pending  sync.WaitGroup
}

func NewService(st *store.Store, provider Provider, delays Delays) Service {
	return &service{store: st, provider: provider, delays: delays}
}

func isAudio(filename, contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	}
	return strings.HasPrefix(mediaType, "audio/")
}

// UploadAudio records the audio key on the project and schedules its
// transcription. The transcription lands on the project once the delay elapses.
func (s *service) UploadAudio(ctx context.Context, projectID, filename, contentType string, size int64) (AudioFile, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"project_id": projectID, "filename": filename})

	if !isAudio(filename, contentType) {
		return AudioFile{}, fmt.Errorf("upload %q (%s): %w", filename, contentType, ErrNotAudio)
	}

	id, err := gonanoid.New()
	if err != nil {
		return AudioFile{}, fmt.Errorf("mint audio key: %w", err)
	}
	audio := AudioFile{
		Key:         id + strings.ToLower(filepath.Ext(filename)),
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
	}

	if _, ok := s.store.UpdateProject(projectID, store.ProjectUpdate{AudioFile: &audio.Key}); !ok {
		return AudioFile{}, fmt.Errorf("upload audio: %w", store.ErrProjectNotFound)
	}
	log.WithField("audio", audio.Key).Info("Audio uploaded, transcription scheduled")

	s.schedule(s.delays.Transcription, func(ctx context.Context) {
		text, err := s.provider.Transcribe(ctx, audio)
		if err != nil {
			log.WithError(err).Error("Failed to transcribe audio")
			return
		}
		if _, ok := s.store.UpdateProject(projectID, store.ProjectUpdate{Transcription: &text}); !ok {
			log.Warn("Project gone before transcription finished")
			return
		}
		log.Info("Transcription ready")
	})
	return audio, nil
}

func (s *service) SaveTranscription(ctx context.Context, projectID, text string) (store.Project, error) {
	p, ok := s.store.UpdateProject(projectID, store.ProjectUpdate{Transcription: &text})
	if !ok {
		return store.Project{}, fmt.Errorf("save transcription: %w", store.ErrProjectNotFound)
	}
	config.WithContext(ctx).WithField("project_id", projectID).Debug("Transcription saved")
	return p, nil
}

// GenerateContent appends a generated study set to the project. The existing
// flashcards and quizzes are kept.
func (s *service) GenerateContent(ctx context.Context, projectID string) (GenerateResponse, error) {
	p, ok := s.store.Project(projectID)
	if !ok {
		return GenerateResponse{}, fmt.Errorf("generate content: %w", store.ErrProjectNotFound)
	}
	if p.Transcription == nil || strings.TrimSpace(*p.Transcription) == "" {
		return GenerateResponse{}, fmt.Errorf("generate content: %w", ErrEmptyTranscription)
	}

	cards, quizzes, err := s.provider.GenerateStudySet(ctx, *p.Transcription)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("generate content: %w", err)
	}

	// Appended against the project as it is now, so quizzes completed while
	// the provider ran keep their results.
	if _, err := s.store.ModifyProject(projectID, func(p *store.Project) error {
		p.Flashcards = append(p.Flashcards, cards...)
		p.Quizzes = append(p.Quizzes, quizzes...)
		return nil
	}); err != nil {
		return GenerateResponse{}, fmt.Errorf("generate content: %w", err)
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"project_id": projectID,
		"flashcards": len(cards),
		"quizzes":    len(quizzes),
	}).Info("Study set generated")
	return GenerateResponse{ProjectID: projectID, Flashcards: len(cards), Quizzes: len(quizzes)}, nil
}

// Ask appends the user's message and schedules the assistant reply in the
// same conversation.
func (s *service) Ask(ctx context.Context, projectID, content string) (store.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return store.ChatMessage{}, ErrEmptyMessage
	}

	msg := s.store.AppendChatMessage(projectID, content, store.SenderUser)
	log := config.WithContext(ctx).WithField("project_id", projectID)

	s.schedule(s.delays.Reply, func(ctx context.Context) {
		transcription := ""
		if p, ok := s.store.Project(projectID); ok && p.Transcription != nil {
			transcription = *p.Transcription
		}
		reply, err := s.provider.Reply(ctx, content, transcription)
		if err != nil {
			log.WithError(err).Error("Failed to produce reply")
			return
		}
		s.store.AppendChatMessage(projectID, reply, store.SenderAI)
	})
	return msg, nil
}

// schedule runs fn after d on its own goroutine, detached from the caller's
// context. Scheduled work is not cancellable.
func (s *service) schedule(d time.Duration, fn func(ctx context.Context)) {
	s.pending.Add(1)
	time.AfterFunc(d, func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), workTimeout)
		defer cancel()
		fn(ctx)
	})
}

// Wait blocks until all scheduled work has run.
func (s *service) Wait() {
	s.pending.Wait()
}
