package quiz

import (
	"time"

	"github.com/saulo-duarte/memento/internal/store"
)

type QuestionDTO struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

type CreateQuizDTO struct {
	Title     string        `json:"title"`
	Questions []QuestionDTO `json:"questions"`
}

type CompleteQuizDTO struct {
	Answers []int `json:"answers"`
}

type QuizSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Questions   int        `json:"total_questions"`
	Completed   bool       `json:"completed"`
	Score       *int       `json:"score,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// QuestionResult tells the taker how each answer was judged.
type QuestionResult struct {
	QuestionID    string  `json:"question_id"`
	Answer        *int    `json:"answer"`
	CorrectAnswer int     `json:"correct_answer"`
	Correct       bool    `json:"correct"`
	Explanation   *string `json:"explanation,omitempty"`
}

type QuizResultDTO struct {
	Quiz    store.Quiz       `json:"quiz"`
	Score   int              `json:"score"`
	Correct int              `json:"correct"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}

func toSummary(q store.Quiz) QuizSummary {
	return QuizSummary{
		ID:          q.ID,
		Title:       q.Title,
		Questions:   len(q.Questions),
		Completed:   q.Completed(),
		Score:       q.Score,
		CompletedAt: q.CompletedAt,
	}
}
