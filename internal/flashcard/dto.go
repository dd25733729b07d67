package flashcard

import "github.com/saulo-duarte/memento/internal/store"

type CreateFlashcardDTO struct {
	Question   string           `json:"question"`
	Answer     string           `json:"answer"`
	Difficulty store.Difficulty `json:"difficulty"`
	Tags       []string         `json:"tags"`
}

type UpdateFlashcardDTO struct {
	Question   *string           `json:"question"`
	Answer     *string           `json:"answer"`
	Difficulty *store.Difficulty `json:"difficulty"`
	Tags       *[]string         `json:"tags"`
}

type DeckResponse struct {
	ProjectID    string                   `json:"project_id"`
	Flashcards   []store.Flashcard        `json:"flashcards"`
	ByDifficulty map[store.Difficulty]int `json:"by_difficulty"`
}
