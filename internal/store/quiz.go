package store

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	util "github.com/saulo-duarte/memento/internal/utils"
)

// Score returns the percentage of questions answered correctly, rounded to the
// nearest integer. Missing or out-of-range answers count as wrong.
func Score(questions []QuizQuestion, answers []int) int {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(questions)) * 100))
}

// CompleteQuiz scores answers against the quiz and records the score and the
// completion time on it. Completing a quiz again overwrites the previous result.
func (s *Store) CompleteQuiz(projectID, quizID string, answers []int) (Quiz, error) {
	var (
		out Quiz
		err error
	)
	s.mutate(func(st *State) bool {
		i := indexOf(st.Projects, projectID)
		if i < 0 {
			err = fmt.Errorf("complete quiz %s: %w", quizID, ErrProjectNotFound)
			return false
		}
		p := st.Projects[i]
		qi := -1
		for j := range p.Quizzes {
			if p.Quizzes[j].ID == quizID {
				qi = j
				break
			}
		}
		if qi < 0 {
			err = fmt.Errorf("complete quiz %s: %w", quizID, ErrQuizNotFound)
			return false
		}

		now := s.clock.Now()
		quizzes := cloneQuizzes(p.Quizzes)
		score := Score(quizzes[qi].Questions, answers)
		quizzes[qi].Score = &score
		quizzes[qi].CompletedAt = util.ToTimePtr(now)

		p.Quizzes = quizzes
		p.UpdatedAt = util.Later(now, p.UpdatedAt)
		st.Projects[i] = p
		out = cloneQuiz(quizzes[qi])
		return true
	})

	if err == nil {
		s.log.WithFields(logrus.Fields{
			"project_id": projectID,
			"quiz_id":    quizID,
			"score":      *out.Score,
		}).Debug("Quiz completed")
	}
	return out, err
}
