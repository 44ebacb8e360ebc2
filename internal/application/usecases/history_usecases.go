package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizarena/internal/domain/game"
	"quizarena/internal/domain/history"
	"quizarena/internal/infra/logger"
	"quizarena/internal/infra/metrics"
	"quizarena/internal/ports"
)

var ErrHistoricoNaoEncontrado = errors.New("partida não encontrada")

// HistoryUseCases arquiva sessões concluídas e serve os relatórios de partidas anteriores.
// Implementa ports.Archiver.
type HistoryUseCases struct {
	historyRepo ports.HistoryRepository
	quizzes     ports.QuizRepository
	store       ports.SessionStore
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewHistoryUseCases(historyRepo ports.HistoryRepository, quizzes ports.QuizRepository, store ports.SessionStore, m *metrics.Metrics) *HistoryUseCases {
	return &HistoryUseCases{
		historyRepo: historyRepo,
		quizzes:     quizzes,
		store:       store,
		metrics:     m,
		now:         time.Now,
	}
}

// ArchiveSession grava o ranking final e só depois descarta a sessão ao vivo.
// Se a gravação falhar a sessão permanece intacta (marcada como concluída).
func (uc *HistoryUseCases) ArchiveSession(ctx context.Context, snap *game.Snapshot, ranking []game.RankedParticipant) (*history.PreviousGame, error) {
	pg := history.NewPreviousGame(snap.Session, ranking, uc.now())

	if err := uc.historyRepo.SaveHistory(ctx, pg); err != nil {
		return nil, fmt.Errorf("salvar histórico: %w", err)
	}
	if err := uc.store.DeleteSession(ctx, snap.Session.ID); err != nil {
		return nil, fmt.Errorf("remover sessão arquivada: %w", err)
	}

	uc.metrics.IncArchived()
	logger.Info("Sessão arquivada", "sessao", snap.Session.Code, "historico", pg.ID, "participantes", len(pg.Participants))
	return pg, nil
}

// ------ REPORT METHODS ------

func (uc *HistoryUseCases) ListHistory(ctx context.Context, userID string, page, limit int) ([]*history.PreviousGame, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit
	return uc.historyRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *HistoryUseCases) GetHistory(ctx context.Context, id, userID string) (*history.PreviousGame, error) {
	pg, err := uc.historyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pg == nil {
		return nil, ErrHistoricoNaoEncontrado
	}
	// Só quem jogou (ou mestrou) a partida vê o detalhe
	if !pg.HasParticipant(userID) {
		return nil, ErrNaoAutorizado
	}
	return pg, nil
}

// GetQuizStats agrega as partidas arquivadas do quiz. Apenas o autor do quiz consulta.
func (uc *HistoryUseCases) GetQuizStats(ctx context.Context, quizID, userID string) (*history.QuizStats, error) {
	if _, err := ownedQuiz(ctx, uc.quizzes, quizID, userID); err != nil {
		return nil, err
	}
	return uc.historyRepo.GetQuizStats(ctx, quizID)
}
