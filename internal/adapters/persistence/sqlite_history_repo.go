package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quizarena/internal/domain/history"
	"quizarena/internal/ports"
)

type SQLiteHistoryRepository struct {
	db *sql.DB
}

func NewSQLiteHistoryRepository(db *sql.DB) ports.HistoryRepository {
	return &SQLiteHistoryRepository{db: db}
}

// SaveHistory salva a partida e o ranking final numa única transação.
func (r *SQLiteHistoryRepository) SaveHistory(ctx context.Context, pg *history.PreviousGame) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Partida
	_, err = tx.ExecContext(ctx, `
		INSERT INTO previous_games (id, session_code, quiz_id, quiz_title, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, pg.ID, pg.SessionCode, pg.QuizID, pg.QuizTitle, pg.CompletedAt.Unix())
	if err != nil {
		return err
	}

	// 2. Ranking
	queryParticipant := `
		INSERT INTO previous_game_participants (id, previous_game_id, user_id, username, points, rank, is_game_master)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for _, p := range pg.Participants {
		_, err = tx.ExecContext(ctx, queryParticipant,
			p.ID, pg.ID, p.UserID, p.Username, p.Points, p.Rank, p.IsGameMaster,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListByUserID lista as partidas em que o usuário participou, da mais recente para a mais antiga.
// Os participantes não são carregados na listagem.
func (r *SQLiteHistoryRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*history.PreviousGame, error) {
	query := `
		SELECT g.id, g.session_code, g.quiz_id, g.quiz_title, g.completed_at
		FROM previous_games g
		JOIN previous_game_participants p ON p.previous_game_id = g.id
		WHERE p.user_id = ?
		ORDER BY g.completed_at DESC, g.id ASC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*history.PreviousGame
	for rows.Next() {
		pg, err := scanPreviousGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, pg)
	}
	return games, rows.Err()
}

// GetByID busca a partida com o ranking ordenado. Retorna nil, nil se não existir.
func (r *SQLiteHistoryRepository) GetByID(ctx context.Context, id string) (*history.PreviousGame, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, session_code, quiz_id, quiz_title, completed_at
		FROM previous_games
		WHERE id = ?
	`, id)

	pg, err := scanPreviousGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, username, points, rank, is_game_master
		FROM previous_game_participants
		WHERE previous_game_id = ?
		ORDER BY rank ASC
	`, pg.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p := history.RankedParticipant{PreviousGameID: pg.ID}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.Points, &p.Rank, &p.IsGameMaster); err != nil {
			return nil, err
		}
		pg.Participants = append(pg.Participants, p)
	}
	return pg, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreviousGame(s scanner) (*history.PreviousGame, error) {
	var pg history.PreviousGame
	var completedAt int64
	if err := s.Scan(&pg.ID, &pg.SessionCode, &pg.QuizID, &pg.QuizTitle, &completedAt); err != nil {
		return nil, err
	}
	pg.CompletedAt = time.Unix(completedAt, 0)
	return &pg, nil
}

// GetQuizStats agrega as partidas arquivadas do quiz numa única consulta.
// O mestre do jogo fica fora da contagem de jogadores e das pontuações.
func (r *SQLiteHistoryRepository) GetQuizStats(ctx context.Context, quizID string) (*history.QuizStats, error) {
	query := `
		SELECT
			COUNT(DISTINCT g.id),
			COUNT(p.id),
			COALESCE(AVG(p.points), 0),
			COALESCE(MAX(p.points), 0),
			MAX(g.completed_at)
		FROM previous_games g
		LEFT JOIN previous_game_participants p
			ON p.previous_game_id = g.id AND p.is_game_master = 0
		WHERE g.quiz_id = ?
	`
	stats := history.QuizStats{QuizID: quizID}
	var lastPlayed sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, quizID).Scan(
		&stats.GamesPlayed, &stats.Players, &stats.AveragePoints, &stats.TopPoints, &lastPlayed,
	)
	if err != nil {
		return nil, err
	}
	if lastPlayed.Valid {
		at := time.Unix(lastPlayed.Int64, 0)
		stats.LastPlayedAt = &at
	}
	return &stats, nil
}
