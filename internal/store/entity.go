package store

import "time"

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Project struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	AudioFile     *string     `json:"audioFile,omitempty"`
	Transcription *string     `json:"transcription,omitempty"`
	Flashcards    []Flashcard `json:"flashcards"`
	Quizzes       []Quiz      `json:"quizzes"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type Flashcard struct {
	ID         string     `json:"id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags"`
}

type Quiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Questions   []QuizQuestion `json:"questions"`
	Score       *int           `json:"score,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

func (q Quiz) Completed() bool {
	return q.CompletedAt != nil
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   *string  `json:"explanation,omitempty"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId,omitempty"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ProjectUpdate is a partial update: nil fields keep their current value and
// non-nil sequences replace the stored sequence as a whole.
type ProjectUpdate struct {
	Name          *string      `json:"name,omitempty"`
	AudioFile     *string      `json:"audioFile,omitempty"`
	Transcription *string      `json:"transcription,omitempty"`
	Flashcards    *[]Flashcard `json:"flashcards,omitempty"`
	Quizzes       *[]Quiz      `json:"quizzes,omitempty"`
}

func (u ProjectUpdate) IsEmpty() bool {
	return u.Name == nil && u.AudioFile == nil && u.Transcription == nil &&
		u.Flashcards == nil && u.Quizzes == nil
}

// State is the full persisted shape of the store.
type State struct {
	User             *User         `json:"user"`
	IsAuthenticated  bool          `json:"isAuthenticated"`
	Projects         []Project     `json:"projects"`
	CurrentProjectID string        `json:"currentProjectId,omitempty"`
	ChatMessages     []ChatMessage `json:"chatMessages"`
	SidebarOpen      bool          `json:"sidebarOpen"`
	CurrentView      View          `json:"currentView"`
}

func InitialState() State {
	return State{
		Projects:     []Project{},
		ChatMessages: []ChatMessage{},
		SidebarOpen:  true,
		CurrentView:  ViewTranscription,
	}
}

// CurrentProject resolves CurrentProjectID against the collection.
func (s State) CurrentProject() *Project {
	if s.CurrentProjectID == "" {
		return nil
	}
	for i := range s.Projects {
		if s.Projects[i].ID == s.CurrentProjectID {
			p := s.Projects[i]
			return &p
		}
	}
	return nil
}

type Stats struct {
	Projects          int `json:"projects"`
	Flashcards        int `json:"flashcards"`
	Quizzes           int `json:"quizzes"`
	CompletedQuizzes  int `json:"completed_quizzes"`
	ChatMessages      int `json:"chat_messages"`
	TranscribedAudios int `json:"transcribed_audios"`
}
