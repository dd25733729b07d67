package store_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/saulo-duarte/memento/internal/store"
	util "github.com/saulo-duarte/memento/internal/utils"
)

// steppingClock advances by one second on every reading.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func sequentialIDs() func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newTestStore() *store.Store {
	return store.New(
		store.WithClock(util.Clock(newSteppingClock())),
		store.WithIDGenerator(sequentialIDs()),
	)
}

func flashcard(id, question string) store.Flashcard {
	return store.Flashcard{
		ID:         id,
		Question:   question,
		Answer:     "answer to " + question,
		Difficulty: store.DifficultyMedium,
		Tags:       []string{"biology"},
	}
}

func quiz(id string, correct ...int) store.Quiz {
	q := store.Quiz{ID: id, Title: "Quiz " + id}
	for i, c := range correct {
		q.Questions = append(q.Questions, store.QuizQuestion{
			ID:            fmt.Sprintf("%s-q%d", id, i),
			Question:      fmt.Sprintf("Question %d", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: c,
		})
	}
	return q
}

func ptr[T any](v T) *T {
	return &v
}
