package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidQuestion), errors.Is(err, ErrInvalidQuiz):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrProjectNotFound):
		config.Error(w, http.StatusNotFound, "project not found")
	case errors.Is(err, store.ErrQuizNotFound):
		config.Error(w, http.StatusNotFound, "quiz not found")
	case errors.Is(err, ErrQuestionNotFound):
		config.Error(w, http.StatusNotFound, "question not found")
	default:
		config.WithContext(r.Context()).WithError(err).Error(msg)
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.ListQuizzes(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err, "Erro ao listar quizzes do projeto")
		return
	}
	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.GetQuiz(r.Context(), chi.URLParam(r, "projectID"), chi.URLParam(r, "quizID"))
	if err != nil {
		writeError(w, r, err, "Erro ao buscar quiz")
		return
	}
	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Corpo da requisição inválido para criar quiz")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quiz, err := h.service.CreateQuiz(r.Context(), chi.URLParam(r, "projectID"), dto)
	if err != nil {
		writeError(w, r, err, "Erro ao criar quiz")
		return
	}
	config.JSON(w, http.StatusCreated, quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteQuiz(r.Context(), chi.URLParam(r, "projectID"), chi.URLParam(r, "quizID")); err != nil {
		writeError(w, r, err, "Erro ao deletar quiz")
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) CompleteQuiz(w http.ResponseWriter, r *http.Request) {
	var dto CompleteQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Corpo da requisição inválido para concluir quiz")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CompleteQuiz(r.Context(), chi.URLParam(r, "projectID"), chi.URLParam(r, "quizID"), dto.Answers)
	if err != nil {
		writeError(w, r, err, "Erro ao concluir quiz")
		return
	}
	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Corpo da requisição inválido para adicionar pergunta")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.service.AddQuestion(r.Context(), chi.URLParam(r, "projectID"), chi.URLParam(r, "quizID"), dto)
	if err != nil {
		writeError(w, r, err, "Erro ao adicionar pergunta ao quiz")
		return
	}
	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "question added successfully",
		"question": question,
	})
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveQuestion(r.Context(), chi.URLParam(r, "projectID"), chi.URLParam(r, "quizID"), chi.URLParam(r, "questionID"))
	if err != nil {
		writeError(w, r, err, "Erro ao remover pergunta do quiz")
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}
