package handlers

import (
	"net/http"

	"quizarena/internal/application/usecases"
	"quizarena/internal/domain/game"

	"github.com/go-chi/chi/v5"
)

// FlowHandler expõe um endpoint por evento de jogo.
type FlowHandler struct {
	flowUC *usecases.FlowUseCases
}

func NewFlowHandler(flowUC *usecases.FlowUseCases) *FlowHandler {
	return &FlowHandler{flowUC: flowUC}
}

type userRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type answerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// EventResponse é devolvido a quem disparou o evento; Correct só vem em resposta e roubo.
type EventResponse struct {
	Event   string       `json:"event,omitempty"`
	Payload game.Payload `json:"payload"`
	Correct *bool        `json:"correct,omitempty"`
}

func (h *FlowHandler) handle(w http.ResponseWriter, r *http.Request, ev game.Event) {
	ev.SessionCode = chi.URLParam(r, "code")
	ev.ActingUserID = userIDFrom(r)

	out, err := h.flowUC.Handle(r.Context(), ev)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, EventResponse{
		Event:   out.Message,
		Payload: out.Payload,
		Correct: out.Correct,
	})
}

// Join godoc
// @Summary Entra na sessão
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Param body body userRequest true "Usuário que entra (deve ser o autenticado)"
// @Success 200 {object} EventResponse
// @Router /games/{code}/join [post]
func (h *FlowHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	h.handle(w, r, game.Event{Kind: game.EventPlayerJoined, UserID: req.UserID})
}

// Leave godoc
// @Summary Sai da sessão
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Param body body userRequest true "Usuário que sai (deve ser o autenticado)"
// @Success 200 {object} EventResponse
// @Router /games/{code}/leave [post]
func (h *FlowHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	h.handle(w, r, game.Event{Kind: game.EventPlayerLeft, UserID: req.UserID})
}

// Start godoc
// @Summary Inicia o jogo (mestre do jogo)
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Success 200 {object} EventResponse
// @Router /games/{code}/start [post]
func (h *FlowHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, game.Event{Kind: game.EventGameStarted})
}

// Cancel godoc
// @Summary Cancela a sessão (mestre do jogo)
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Success 200 {object} EventResponse
// @Router /games/{code}/cancel [post]
func (h *FlowHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, game.Event{Kind: game.EventGameCancelled})
}

// NextPlayer godoc
// @Summary Passa a vez (mestre do jogo)
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Success 200 {object} EventResponse
// @Router /games/{code}/next-player [post]
func (h *FlowHandler) NextPlayer(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, game.Event{Kind: game.EventNextPlayerSelected})
}

// AllowRobbing godoc
// @Summary Libera o roubo da pergunta atual (mestre do jogo)
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Success 200 {object} EventResponse
// @Router /games/{code}/allow-robbing [post]
func (h *FlowHandler) AllowRobbing(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, game.Event{Kind: game.EventQuestionRobbingIsAllowed})
}

// SelectQuestion godoc
// @Summary Seleciona a próxima pergunta
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Param questionId path string true "Question ID"
// @Success 200 {object} EventResponse
// @Router /games/{code}/questions/{questionId}/select [post]
func (h *FlowHandler) SelectQuestion(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, game.Event{
		Kind:       game.EventQuestionSelected,
		QuestionID: chi.URLParam(r, "questionId"),
	})
}

// Answer godoc
// @Summary Responde a pergunta atual
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Param questionId path string true "Question ID"
// @Param body body answerRequest true "Resposta"
// @Success 200 {object} EventResponse
// @Router /games/{code}/questions/{questionId}/answer [post]
func (h *FlowHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	h.handle(w, r, game.Event{
		Kind:       game.EventAnswerSubmitted,
		QuestionID: chi.URLParam(r, "questionId"),
		Answer:     req.Answer,
	})
}

// Rob godoc
// @Summary Rouba a pergunta atual
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Param questionId path string true "Question ID"
// @Param body body answerRequest true "Resposta"
// @Success 200 {object} EventResponse
// @Router /games/{code}/questions/{questionId}/rob [post]
func (h *FlowHandler) Rob(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	h.handle(w, r, game.Event{
		Kind:       game.EventQuestionRobbed,
		QuestionID: chi.URLParam(r, "questionId"),
		Answer:     req.Answer,
	})
}
