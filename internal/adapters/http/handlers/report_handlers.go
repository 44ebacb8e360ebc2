package handlers

import (
	"net/http"
	"strconv"

	"quizarena/internal/application/usecases"
	"quizarena/internal/domain/history"

	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	historyUC *usecases.HistoryUseCases
}

func NewReportHandler(historyUC *usecases.HistoryUseCases) *ReportHandler {
	return &ReportHandler{historyUC: historyUC}
}

// ListGames godoc
// @Summary Partidas anteriores
// @Description Lista as partidas concluídas em que o usuário logado jogou ou foi mestre.
// @Tags Reports
// @Produce json
// @Param page query int false "Página (default 1)"
// @Param limit query int false "Limite (default 20)"
// @Success 200 {array} history.PreviousGame
// @Security BearerAuth
// @Router /reports/games [get]
func (h *ReportHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	games, err := h.historyUC.ListHistory(r.Context(), userIDFrom(r), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if games == nil {
		games = []*history.PreviousGame{}
	}

	writeJSON(w, http.StatusOK, games)
}

// GetGame godoc
// @Summary Detalhe da partida
// @Description Retorna a partida arquivada com o ranking final.
// @Tags Reports
// @Produce json
// @Param id path string true "Previous Game ID"
// @Success 200 {object} history.PreviousGame
// @Failure 404 {object} ErrorResponse "Partida não encontrada"
// @Security BearerAuth
// @Router /reports/games/{id} [get]
func (h *ReportHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	pg, err := h.historyUC.GetHistory(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pg)
}

// GetQuizStats godoc
// @Summary Estatísticas do quiz
// @Description Agrega as partidas arquivadas do quiz. Apenas o autor consulta.
// @Tags Reports
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} history.QuizStats
// @Failure 403 {object} ErrorResponse "Quiz de outro autor"
// @Failure 404 {object} ErrorResponse "Quiz não encontrado"
// @Security BearerAuth
// @Router /reports/quizzes/{id} [get]
func (h *ReportHandler) GetQuizStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.historyUC.GetQuizStats(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
