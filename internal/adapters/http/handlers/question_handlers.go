package handlers

import (
	"net/http"

	"quizarena/internal/application/usecases"

	"github.com/go-chi/chi/v5"
)

// QuestionHandler edita as perguntas de um rascunho.
type QuestionHandler struct {
	questionUC *usecases.QuestionUseCases
}

func NewQuestionHandler(questionUC *usecases.QuestionUseCases) *QuestionHandler {
	return &QuestionHandler{questionUC: questionUC}
}

type questionRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Answer string `json:"answer" validate:"required"`
	Points int    `json:"points"`
}

func (req questionRequest) draft() usecases.QuestionDraft {
	return usecases.QuestionDraft{Prompt: req.Prompt, Answer: req.Answer, Points: req.Points}
}

// AddQuestion godoc
// @Summary Acrescenta uma pergunta ao fim do rascunho
// @Description A resposta é comparada sem acentos nem maiúsculas durante o jogo.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param body body questionRequest true "Pergunta"
// @Success 201 {object} quiz.Question
// @Failure 400 {object} ErrorResponse "Enunciado, resposta ou pontos inválidos"
// @Failure 409 {object} ErrorResponse "Quiz já publicado"
// @Router /quizzes/{id}/questions [post]
func (h *QuestionHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	q, err := h.questionUC.AddQuestion(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, q)
}

// UpdateQuestion godoc
// @Summary Reescreve enunciado, resposta e pontos
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param questionId path string true "Question ID"
// @Param body body questionRequest true "Pergunta"
// @Success 200 {object} quiz.Question
// @Failure 404 {object} ErrorResponse "Pergunta de outro quiz"
// @Router /quizzes/{id}/questions/{questionId} [put]
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	q, err := h.questionUC.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "questionId"), userIDFrom(r), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, q)
}

// RemoveQuestion godoc
// @Summary Remove uma pergunta e renumera as restantes
// @Tags Questions
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param questionId path string true "Question ID"
// @Success 204
// @Router /quizzes/{id}/questions/{questionId} [delete]
func (h *QuestionHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	err := h.questionUC.RemoveQuestion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "questionId"), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	QuestionIDs []string `json:"questionIds" validate:"required"`
}

// ReorderQuestions godoc
// @Summary Reordena as perguntas do rascunho
// @Description questionIds deve listar todas as perguntas do quiz, cada uma uma vez, na nova ordem.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param body body reorderRequest true "Nova ordem"
// @Success 200 {array} quiz.Question
// @Failure 400 {object} ErrorResponse "Lista incompleta ou com repetição"
// @Failure 409 {object} ErrorResponse "Quiz já publicado"
// @Router /quizzes/{id}/questions/order [put]
func (h *QuestionHandler) ReorderQuestions(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ordered, err := h.questionUC.ReorderQuestions(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), req.QuestionIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ordered)
}
