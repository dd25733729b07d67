package generation

import (
	"context"
	"math/rand"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

// Provider produces study material. The only implementation is a mock that
// returns canned content; a real speech or language model would slot in here.
type Provider interface {
	Transcribe(ctx context.Context, audio AudioFile) (string, error)
	GenerateStudySet(ctx context.Context, transcription string) ([]store.Flashcard, []store.Quiz, error)
	Reply(ctx context.Context, question, transcription string) (string, error)
}

type mockProvider struct {
	newID func() string
}

// NewMockProvider mints ids for generated cards and quizzes with newID.
func NewMockProvider(newID func() string) Provider {
	return &mockProvider{newID: newID}
}

func (p *mockProvider) Transcribe(ctx context.Context, audio AudioFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	config.WithContext(ctx).WithField("audio", audio.Key).Debug("[GENERATION] Transcrição simulada")
	return mockTranscription, nil
}

func (p *mockProvider) GenerateStudySet(ctx context.Context, _ string) ([]store.Flashcard, []store.Quiz, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	cards := make([]store.Flashcard, 0, len(mockFlashcards))
	for _, c := range mockFlashcards {
		cards = append(cards, store.Flashcard{
			ID:         p.newID(),
			Question:   c.question,
			Answer:     c.answer,
			Difficulty: store.Difficulty(c.difficulty),
			Tags:       append([]string(nil), c.tags...),
		})
	}

	explanation := mockQuizExplanation
	quiz := store.Quiz{
		ID:    p.newID(),
		Title: mockQuizTitle,
		Questions: []store.QuizQuestion{{
			ID:            p.newID(),
			Question:      mockQuizQuestion,
			Options:       append([]string(nil), mockQuizOptions...),
			CorrectAnswer: mockQuizCorrect,
			Explanation:   &explanation,
		}},
	}
	return cards, []store.Quiz{quiz}, nil
}

func (p *mockProvider) Reply(ctx context.Context, _, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return mockReplies[rand.Intn(len(mockReplies))], nil
}
