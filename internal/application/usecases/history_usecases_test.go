package usecases

import (
	"context"
	"testing"
	"time"

	"quizarena/internal/adapters/persistence"
	"quizarena/internal/domain/game"
	"quizarena/internal/domain/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryUseCases_ArchiveSession(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewInMemorySessionStore()
	session := game.NewSession("ARQ001", "quiz-1", "Geografia", "gm")
	require.NoError(t, store.CreateSession(ctx, session, game.Participant{UserID: "gm", Username: "Mestre"}, nil))

	hist := &fakeHistoryRepo{}
	uc := NewHistoryUseCases(hist, newFakeQuizRepo(), store, nil)
	fixed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	snap, err := store.LoadSnapshot(ctx, "ARQ001")
	require.NoError(t, err)

	ranking := game.Rank(snap.Participants)
	pg, err := uc.ArchiveSession(ctx, snap, ranking)
	require.NoError(t, err)

	assert.Equal(t, fixed, pg.CompletedAt)
	assert.Equal(t, "ARQ001", pg.SessionCode)
	require.Len(t, pg.Participants, 1)
	assert.Equal(t, pg.ID, pg.Participants[0].PreviousGameID)

	gone, err := store.LoadSnapshot(ctx, "ARQ001")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestHistoryUseCases_SaveFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewInMemorySessionStore()
	session := game.NewSession("ARQ002", "quiz-1", "Geografia", "gm")
	require.NoError(t, store.CreateSession(ctx, session, game.Participant{UserID: "gm", Username: "Mestre"}, nil))

	uc := NewHistoryUseCases(&fakeHistoryRepo{err: errFalhaInjetada}, newFakeQuizRepo(), store, nil)
	snap, _ := store.LoadSnapshot(ctx, "ARQ002")

	_, err := uc.ArchiveSession(ctx, snap, game.Rank(snap.Participants))
	assert.ErrorIs(t, err, errFalhaInjetada)

	still, _ := store.LoadSnapshot(ctx, "ARQ002")
	assert.NotNil(t, still)
}

func TestHistoryUseCases_Reports(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewInMemorySessionStore()
	hist := &fakeHistoryRepo{}
	uc := NewHistoryUseCases(hist, newFakeQuizRepo(), store, nil)

	for i := 0; i < 3; i++ {
		snap := &game.Snapshot{
			Session:      *game.NewSession(game.NewCode(), "quiz-1", "Geografia", "gm"),
			Participants: []game.Participant{{UserID: "gm", IsGameMaster: true}, {UserID: "a", Points: i}},
		}
		_, err := uc.ArchiveSession(ctx, snap, game.Rank(snap.Participants))
		require.NoError(t, err)
	}

	t.Run("Paginação", func(t *testing.T) {
		page, err := uc.ListHistory(ctx, "a", 1, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)

		page, err = uc.ListHistory(ctx, "a", 2, 2)
		require.NoError(t, err)
		assert.Len(t, page, 1)

		// valores inválidos caem no padrão
		page, err = uc.ListHistory(ctx, "a", 0, 0)
		require.NoError(t, err)
		assert.Len(t, page, 3)
	})

	t.Run("Detalhe apenas para participantes", func(t *testing.T) {
		id := hist.saved[0].ID

		pg, err := uc.GetHistory(ctx, id, "a")
		require.NoError(t, err)
		assert.Equal(t, id, pg.ID)

		_, err = uc.GetHistory(ctx, id, "intruso")
		assert.ErrorIs(t, err, ErrNaoAutorizado)

		_, err = uc.GetHistory(ctx, "nao-existe", "a")
		assert.ErrorIs(t, err, ErrHistoricoNaoEncontrado)
	})
}

func TestHistoryUseCases_GetQuizStats(t *testing.T) {
	ctx := context.Background()
	owned := &quiz.Quiz{ID: "quiz-1", OwnerID: "gm", Title: "Geografia", Status: quiz.Published}
	hist := &fakeHistoryRepo{}
	uc := NewHistoryUseCases(hist, newFakeQuizRepo(owned), persistence.NewInMemorySessionStore(), nil)

	for _, pts := range []int{4, 8} {
		snap := &game.Snapshot{
			Session:      *game.NewSession(game.NewCode(), "quiz-1", "Geografia", "gm"),
			Participants: []game.Participant{{UserID: "gm", IsGameMaster: true}, {UserID: "a", Points: pts}},
		}
		_, err := uc.ArchiveSession(ctx, snap, game.Rank(snap.Participants))
		require.NoError(t, err)
	}

	stats, err := uc.GetQuizStats(ctx, "quiz-1", "gm")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesPlayed)
	assert.Equal(t, 2, stats.Players)
	assert.InDelta(t, 6.0, stats.AveragePoints, 0.001)
	assert.Equal(t, 8, stats.TopPoints)
	assert.NotNil(t, stats.LastPlayedAt)

	_, err = uc.GetQuizStats(ctx, "quiz-1", "a")
	assert.ErrorIs(t, err, ErrNaoAutorizado)

	_, err = uc.GetQuizStats(ctx, "quiz-9", "gm")
	assert.ErrorIs(t, err, ErrQuizNaoEncontrado)
}
