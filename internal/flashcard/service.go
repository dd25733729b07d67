package flashcard

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
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrInvalidFlashcard  = errors.New("flashcard needs a question and an answer")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
)

type Service interface {
	List(ctx context.Context, projectID string) (DeckResponse, error)
	Create(ctx context.Context, projectID string, dto CreateFlashcardDTO) (store.Flashcard, error)
	Update(ctx context.Context, projectID, cardID string, dto UpdateFlashcardDTO) (store.Flashcard, error)
	Delete(ctx context.Context, projectID, cardID string) error
}

type service struct {
	store *store.Store
}

func NewService(st *store.Store) Service {
	return &service{store: st}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *service) List(_ context.Context, projectID string) (DeckResponse, error) {
	p, ok := s.store.Project(projectID)
	if !ok {
		return DeckResponse{}, fmt.Errorf("list flashcards: %w", store.ErrProjectNotFound)
	}
	counts := make(map[store.Difficulty]int, len(store.AllDifficulties))
	for _, d := range store.AllDifficulties {
		counts[d] = 0
	}
	for _, c := range p.Flashcards {
		counts[c.Difficulty]++
	}
	return DeckResponse{ProjectID: projectID, Flashcards: p.Flashcards, ByDifficulty: counts}, nil
}

func (s *service) Create(ctx context.Context, projectID string, dto CreateFlashcardDTO) (store.Flashcard, error) {
	card := store.Flashcard{
		Question:   strings.TrimSpace(dto.Question),
		Answer:     strings.TrimSpace(dto.Answer),
		Difficulty: dto.Difficulty,
		Tags:       cleanTags(dto.Tags),
	}
	if card.Difficulty == "" {
		card.Difficulty = store.DifficultyMedium
	}
	if err := validate(card); err != nil {
		return store.Flashcard{}, err
	}

	card.ID = s.store.NewID()
	if _, err := s.store.ModifyProject(projectID, func(p *store.Project) error {
		p.Flashcards = append(p.Flashcards, card)
		return nil
	}); err != nil {
		return store.Flashcard{}, fmt.Errorf("create flashcard: %w", err)
	}

	config.WithContext(ctx).WithFields(logrus.Fields{"project_id": projectID, "flashcard_id": card.ID}).Debug("Flashcard created")
	return card, nil
}

func (s *service) Update(ctx context.Context, projectID, cardID string, dto UpdateFlashcardDTO) (store.Flashcard, error) {
	var card store.Flashcard
	_, err := s.store.ModifyProject(projectID, func(p *store.Project) error {
		i := indexOf(p.Flashcards, cardID)
		if i < 0 {
			return fmt.Errorf("flashcard %s: %w", cardID, ErrFlashcardNotFound)
		}

		card = p.Flashcards[i]
		if dto.Question != nil {
			card.Question = strings.TrimSpace(*dto.Question)
		}
		if dto.Answer != nil {
			card.Answer = strings.TrimSpace(*dto.Answer)
		}
		if dto.Difficulty != nil {
			card.Difficulty = *dto.Difficulty
		}
		if dto.Tags != nil {
			card.Tags = cleanTags(*dto.Tags)
		}
		if err := validate(card); err != nil {
			return err
		}
		p.Flashcards[i] = card
		return nil
	})
	if err != nil {
		return store.Flashcard{}, fmt.Errorf("update flashcard: %w", err)
	}

	config.WithContext(ctx).WithFields(logrus.Fields{"project_id": projectID, "flashcard_id": cardID}).Debug("Flashcard updated")
	return card, nil
}

func (s *service) Delete(ctx context.Context, projectID, cardID string) error {
	_, err := s.store.ModifyProject(projectID, func(p *store.Project) error {
		i := indexOf(p.Flashcards, cardID)
		if i < 0 {
			return fmt.Errorf("flashcard %s: %w", cardID, ErrFlashcardNotFound)
		}
		p.Flashcards = append(p.Flashcards[:i:i], p.Flashcards[i+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}

	config.WithContext(ctx).WithFields(logrus.Fields{"project_id": projectID, "flashcard_id": cardID}).Debug("Flashcard deleted")
	return nil
}

func validate(c store.Flashcard) error {
	if c.Question == "" || c.Answer == "" {
		return ErrInvalidFlashcard
	}
	if !c.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}
	return nil
}

func indexOf(cards []store.Flashcard, id string) int {
	for i := range cards {
		if cards[i].ID == id {
			return i
		}
	}
	return -1
}
