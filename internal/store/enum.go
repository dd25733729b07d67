package store

type View string

const (
	ViewTranscription View = "transcription"
	ViewFlashcards    View = "flashcards"
	ViewQuiz          View = "quiz"
	ViewChat          View = "chat"
)

var AllViews = []View{
	ViewTranscription,
	ViewFlashcards,
	ViewQuiz,
	ViewChat,
}

func (v View) IsValid() bool {
	for _, known := range AllViews {
		if v == known {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, known := range AllDifficulties {
		if d == known {
			return true
		}
	}
	return false
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)
