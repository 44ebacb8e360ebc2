package handlers

import (
	"context"
	"net/http"

	"quizarena/internal/application/usecases"
	"quizarena/internal/domain/quiz"

	"github.com/go-chi/chi/v5"
)

// QuizHandler expõe o CRUD de quizzes do autor logado.
type QuizHandler struct {
	quizUC *usecases.QuizUseCases
}

func NewQuizHandler(quizUC *usecases.QuizUseCases) *QuizHandler {
	return &QuizHandler{quizUC: quizUC}
}

type quizRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (req quizRequest) draft() usecases.QuizDraft {
	return usecases.QuizDraft{Title: req.Title, Description: req.Description}
}

// CreateQuiz godoc
// @Summary Abre um rascunho de quiz
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body quizRequest true "Título e descrição"
// @Success 201 {object} quiz.Quiz
// @Failure 400 {object} ErrorResponse "Título ausente ou longo demais"
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	q, err := h.quizUC.CreateQuiz(r.Context(), userIDFrom(r), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

// ListQuizzes godoc
// @Summary Lista os quizzes do autor
// @Description Sem perguntas. Filtra por status quando informado.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param status query string false "DRAFT ou PUBLISHED"
// @Success 200 {array} quiz.Quiz
// @Failure 400 {object} ErrorResponse "Status desconhecido"
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizUC.ListQuizzes(r.Context(), userIDFrom(r), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Quiz com perguntas e respostas
// @Description Só o autor enxerga as respostas.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Success 200 {object} quiz.Quiz
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.quizUC.GetQuiz)
}

// UpdateQuiz godoc
// @Summary Renomeia um rascunho
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param body body quizRequest true "Título e descrição"
// @Success 200 {object} quiz.Quiz
// @Failure 409 {object} ErrorResponse "Quiz já publicado"
// @Router /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	q, err := h.quizUC.UpdateQuiz(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), req.draft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// DeleteQuiz godoc
// @Summary Apaga um rascunho e suas perguntas
// @Tags Quizzes
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Quiz já publicado"
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.quizUC.DeleteQuiz(r.Context(), chi.URLParam(r, "id"), userIDFrom(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PublishQuiz godoc
// @Summary Publica o quiz para abrir sessões
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Success 200 {object} quiz.Quiz
// @Failure 409 {object} ErrorResponse "Sem perguntas ou pergunta inválida"
// @Router /quizzes/{id}/publish [post]
func (h *QuizHandler) PublishQuiz(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.quizUC.PublishQuiz)
}

type quizOp func(ctx context.Context, quizID, userID string) (*quiz.Quiz, error)

// respond executa uma operação (quizID, userID) e serializa o quiz devolvido.
func (h *QuizHandler) respond(w http.ResponseWriter, r *http.Request, status int, op quizOp) {
	q, err := op(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, q)
}
