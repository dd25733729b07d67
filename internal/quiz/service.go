package quiz

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
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuestion  = errors.New("question needs text, at least two options and a correct answer among them")
	ErrInvalidQuiz      = errors.New("quiz needs a title")
)

type QuizService interface {
	ListQuizzes(ctx context.Context, projectID string) ([]QuizSummary, error)
	GetQuiz(ctx context.Context, projectID, quizID string) (store.Quiz, error)
	CreateQuiz(ctx context.Context, projectID string, dto CreateQuizDTO) (store.Quiz, error)
	DeleteQuiz(ctx context.Context, projectID, quizID string) error
	CompleteQuiz(ctx context.Context, projectID, quizID string, answers []int) (QuizResultDTO, error)
	AddQuestion(ctx context.Context, projectID, quizID string, dto QuestionDTO) (store.QuizQuestion, error)
	RemoveQuestion(ctx context.Context, projectID, quizID, questionID string) error
}

type quizService struct {
	store *store.Store
}

func NewService(st *store.Store) QuizService {
	return &quizService{store: st}
}

func (s *quizService) newQuestion(dto QuestionDTO) (store.QuizQuestion, error) {
	q := store.QuizQuestion{
		ID:            s.store.NewID(),
		Question:      strings.TrimSpace(dto.Question),
		Options:       append([]string(nil), dto.Options...),
		CorrectAnswer: dto.CorrectAnswer,
		Explanation:   dto.Explanation,
	}
	if q.Question == "" || len(q.Options) < 2 || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return store.QuizQuestion{}, ErrInvalidQuestion
	}
	return q, nil
}

func (s *quizService) project(projectID string) (store.Project, error) {
	p, ok := s.store.Project(projectID)
	if !ok {
		return store.Project{}, fmt.Errorf("project %s: %w", projectID, store.ErrProjectNotFound)
	}
	return p, nil
}

func quizIndex(quizzes []store.Quiz, id string) int {
	for i := range quizzes {
		if quizzes[i].ID == id {
			return i
		}
	}
	return -1
}

// modifyQuiz edits one quiz of the project inside a single store operation,
// so results recorded by CompleteQuiz in the meantime are never overwritten.
func (s *quizService) modifyQuiz(projectID, quizID string, fn func(q *store.Quiz) error) error {
	_, err := s.store.ModifyProject(projectID, func(p *store.Project) error {
		i := quizIndex(p.Quizzes, quizID)
		if i < 0 {
			return fmt.Errorf("quiz %s: %w", quizID, store.ErrQuizNotFound)
		}
		return fn(&p.Quizzes[i])
	})
	return err
}

func (s *quizService) ListQuizzes(_ context.Context, projectID string) ([]QuizSummary, error) {
	p, err := s.project(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]QuizSummary, 0, len(p.Quizzes))
	for _, q := range p.Quizzes {
		out = append(out, toSummary(q))
	}
	return out, nil
}

func (s *quizService) GetQuiz(_ context.Context, projectID, quizID string) (store.Quiz, error) {
	p, err := s.project(projectID)
	if err != nil {
		return store.Quiz{}, err
	}
	i := quizIndex(p.Quizzes, quizID)
	if i < 0 {
		return store.Quiz{}, fmt.Errorf("quiz %s: %w", quizID, store.ErrQuizNotFound)
	}
	return p.Quizzes[i], nil
}

func (s *quizService) CreateQuiz(ctx context.Context, projectID string, dto CreateQuizDTO) (store.Quiz, error) {
	log := config.WithContext(ctx).WithField("project_id", projectID)

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return store.Quiz{}, ErrInvalidQuiz
	}
	quiz := store.Quiz{ID: s.store.NewID(), Title: title, Questions: []store.QuizQuestion{}}
	for _, qd := range dto.Questions {
		q, err := s.newQuestion(qd)
		if err != nil {
			return store.Quiz{}, err
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	if _, err := s.store.ModifyProject(projectID, func(p *store.Project) error {
		p.Quizzes = append(p.Quizzes, quiz)
		return nil
	}); err != nil {
		return store.Quiz{}, err
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz criado com sucesso")
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, projectID, quizID string) error {
	if _, err := s.store.ModifyProject(projectID, func(p *store.Project) error {
		i := quizIndex(p.Quizzes, quizID)
		if i < 0 {
			return fmt.Errorf("quiz %s: %w", quizID, store.ErrQuizNotFound)
		}
		p.Quizzes = append(p.Quizzes[:i:i], p.Quizzes[i+1:]...)
		return nil
	}); err != nil {
		return err
	}

	config.WithContext(ctx).WithFields(logrus.Fields{"project_id": projectID, "quiz_id": quizID}).Info("Quiz deletado com sucesso")
	return nil
}

// CompleteQuiz records the score and returns a per-question breakdown.
func (s *quizService) CompleteQuiz(ctx context.Context, projectID, quizID string, answers []int) (QuizResultDTO, error) {
	quiz, err := s.store.CompleteQuiz(projectID, quizID, answers)
	if err != nil {
		return QuizResultDTO{}, err
	}

	res := QuizResultDTO{Quiz: quiz, Score: *quiz.Score, Total: len(quiz.Questions), Results: []QuestionResult{}}
	for i, q := range quiz.Questions {
		r := QuestionResult{QuestionID: q.ID, CorrectAnswer: q.CorrectAnswer, Explanation: q.Explanation}
		if i < len(answers) {
			a := answers[i]
			r.Answer = &a
			r.Correct = a == q.CorrectAnswer
		}
		if r.Correct {
			res.Correct++
		}
		res.Results = append(res.Results, r)
	}

	config.WithContext(ctx).WithFields(logrus.Fields{
		"project_id": projectID,
		"quiz_id":    quizID,
		"score":      res.Score,
	}).Info("Quiz concluído")
	return res, nil
}

func (s *quizService) AddQuestion(ctx context.Context, projectID, quizID string, dto QuestionDTO) (store.QuizQuestion, error) {
	question, err := s.newQuestion(dto)
	if err != nil {
		return store.QuizQuestion{}, err
	}

	if err := s.modifyQuiz(projectID, quizID, func(q *store.Quiz) error {
		q.Questions = append(q.Questions, question)
		return nil
	}); err != nil {
		return store.QuizQuestion{}, err
	}

	config.WithContext(ctx).WithFields(logrus.Fields{"quiz_id": quizID, "question_id": question.ID}).Info("Pergunta adicionada com sucesso")
	return question, nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, projectID, quizID, questionID string) error {
	err := s.modifyQuiz(projectID, quizID, func(q *store.Quiz) error {
		kept := make([]store.QuizQuestion, 0, len(q.Questions))
		for _, qq := range q.Questions {
			if qq.ID != questionID {
				kept = append(kept, qq)
			}
		}
		if len(kept) == len(q.Questions) {
			return fmt.Errorf("question %s: %w", questionID, ErrQuestionNotFound)
		}
		q.Questions = kept
		return nil
	})
	if err != nil {
		return err
	}

	config.WithContext(ctx).WithFields(logrus.Fields{"quiz_id": quizID, "question_id": questionID}).Info("Pergunta removida com sucesso")
	return nil
}
