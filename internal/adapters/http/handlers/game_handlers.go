package handlers

import (
	"net/http"

	"quizarena/internal/application/usecases"

	"github.com/go-chi/chi/v5"
)

type GameHandler struct {
	gameUC *usecases.GameUseCases
}

func NewGameHandler(gameUC *usecases.GameUseCases) *GameHandler {
	return &GameHandler{gameUC: gameUC}
}

type createGameRequest struct {
	QuizID string `json:"quizId" validate:"required"`
}

// CreateGame godoc
// @Summary Cria uma sessão de jogo
// @Description Cria uma sessão a partir de um quiz PUBLISHED. O criador vira mestre do jogo.
// @Tags Games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createGameRequest true "Quiz a ser jogado"
// @Success 201 {object} game.Snapshot
// @Failure 409 {object} ErrorResponse "Quiz não publicado"
// @Router /games [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	snap, err := h.gameUC.CreateGame(r.Context(), userIDFrom(r), req.QuizID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, snap)
}

// GetGame godoc
// @Summary Obtém o estado da sessão
// @Tags Games
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sessão"
// @Success 200 {object} game.Snapshot
// @Failure 404 {object} ErrorResponse "Sessão não encontrada"
// @Router /games/{code} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := h.gameUC.GetGame(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
