package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizarena/internal/domain/game"
	"quizarena/internal/domain/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archived(code string, completedAt time.Time, ranking ...game.RankedParticipant) *history.PreviousGame {
	return history.NewPreviousGame(game.Session{Code: code, QuizID: "quiz-1", QuizTitle: "Geografia"}, ranking, completedAt)
}

func TestSQLiteHistoryRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteHistoryRepository(openTestDB(t))
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	older := archived("OLD001", base,
		game.RankedParticipant{UserID: "a", Username: "Ana", Points: 10, Rank: 1},
		game.RankedParticipant{UserID: "gm", Username: "Mestre", Rank: 2, IsGameMaster: true},
	)
	newer := archived("NEW001", base.Add(time.Hour),
		game.RankedParticipant{UserID: "b", Username: "Bruno", Points: 15, Rank: 1},
		game.RankedParticipant{UserID: "a", Username: "Ana", Points: 5, Rank: 2},
	)
	require.NoError(t, repo.SaveHistory(ctx, older))
	require.NoError(t, repo.SaveHistory(ctx, newer))

	t.Run("ListByUserID", func(t *testing.T) {
		games, err := repo.ListByUserID(ctx, "a", 10, 0)
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, "NEW001", games[0].SessionCode)
		assert.Equal(t, "OLD001", games[1].SessionCode)
		assert.True(t, base.Equal(games[1].CompletedAt))

		games, err = repo.ListByUserID(ctx, "a", 1, 1)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "OLD001", games[0].SessionCode)

		games, err = repo.ListByUserID(ctx, "gm", 10, 0)
		require.NoError(t, err)
		assert.Len(t, games, 1)
	})

	t.Run("GetByID", func(t *testing.T) {
		pg, err := repo.GetByID(ctx, newer.ID)
		require.NoError(t, err)
		require.NotNil(t, pg)
		require.Len(t, pg.Participants, 2)
		assert.Equal(t, "b", pg.Participants[0].UserID)
		assert.Equal(t, 1, pg.Participants[0].Rank)
		assert.Equal(t, 2, pg.Participants[1].Rank)

		missing, err := repo.GetByID(ctx, "nao-existe")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("GetQuizStats", func(t *testing.T) {
		stats, err := repo.GetQuizStats(ctx, "quiz-1")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.GamesPlayed)
		assert.Equal(t, 3, stats.Players, "mestre fora da contagem")
		assert.InDelta(t, 10.0, stats.AveragePoints, 0.001)
		assert.Equal(t, 15, stats.TopPoints)
		require.NotNil(t, stats.LastPlayedAt)
		assert.True(t, base.Add(time.Hour).Equal(*stats.LastPlayedAt))

		// mesmo resultado que o cálculo em memória
		want := history.Summarize("quiz-1", []*history.PreviousGame{older, newer})
		assert.Equal(t, want.Players, stats.Players)
		assert.InDelta(t, want.AveragePoints, stats.AveragePoints, 0.001)

		empty, err := repo.GetQuizStats(ctx, "quiz-sem-partidas")
		require.NoError(t, err)
		assert.Zero(t, empty.GamesPlayed)
		assert.Zero(t, empty.Players)
		assert.Nil(t, empty.LastPlayedAt)
	})
}

func TestSQLiteHistoryRepository_SaveRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLiteHistoryRepository(db)
	pg := archived("ROLL01", time.Now(),
		game.RankedParticipant{UserID: "a", Username: "Ana", Points: 10, Rank: 1},
	)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO previous_games").
		WithArgs(pg.ID, "ROLL01", "quiz-1", "Geografia", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO previous_game_participants").
		WithArgs(pg.Participants[0].ID, pg.ID, "a", "Ana", 10, 1, false).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = repo.SaveHistory(context.Background(), pg)
	assert.EqualError(t, err, "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}
