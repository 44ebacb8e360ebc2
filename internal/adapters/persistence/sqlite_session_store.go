package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizarena/internal/domain/game"
	"quizarena/internal/ports"
)

// SQLiteSessionStore implementa SessionStore sobre as tabelas game_sessions,
// session_participants e session_questions.
type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(db *sql.DB) ports.SessionStore {
	return &SQLiteSessionStore{db: db}
}

// CreateSession grava sessão, mestre do jogo e perguntas numa única transação.
func (s *SQLiteSessionStore) CreateSession(ctx context.Context, sess *game.Session, master game.Participant, questions []game.QuestionState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO game_sessions (id, code, quiz_id, quiz_title, started, completed, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, 0, ?, ?, ?)
	`, sess.ID, sess.Code, sess.QuizID, sess.QuizTitle, sess.CreatedBy, sess.CreatedAt.Unix(), sess.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("inserir sessão: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO session_participants (session_id, user_id, username, is_current_turn, is_game_master, points, join_order, joined_at)
		VALUES (?, ?, ?, 0, 1, 0, 1, ?)
	`, sess.ID, master.UserID, master.Username, master.JoinedAt.Unix())
	if err != nil {
		return fmt.Errorf("inserir mestre do jogo: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO session_questions (session_id, question_id, prompt, correct_answer, points, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range questions {
		if _, err := stmt.ExecContext(ctx, sess.ID, q.QuestionID, q.Prompt, q.CorrectAnswer, q.Points, q.SortOrder); err != nil {
			return fmt.Errorf("inserir pergunta %s: %w", q.QuestionID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteSessionStore) CodeExists(ctx context.Context, code string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM game_sessions WHERE code = ?", code).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// LoadSnapshot lê sessão, participantes e perguntas dentro de uma mesma transação.
func (s *SQLiteSessionStore) LoadSnapshot(ctx context.Context, code string) (*game.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var snap game.Snapshot
	var createdAt, updatedAt int64
	err = tx.QueryRowContext(ctx, `
		SELECT id, code, quiz_id, quiz_title, started, completed, created_by, created_at, updated_at
		FROM game_sessions WHERE code = ?
	`, code).Scan(
		&snap.Session.ID, &snap.Session.Code, &snap.Session.QuizID, &snap.Session.QuizTitle,
		&snap.Session.Started, &snap.Session.Completed, &snap.Session.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	snap.Session.CreatedAt = time.Unix(createdAt, 0)
	snap.Session.UpdatedAt = time.Unix(updatedAt, 0)

	if snap.Participants, err = loadParticipants(ctx, tx, snap.Session.ID); err != nil {
		return nil, err
	}
	if snap.Questions, err = loadQuestionStates(ctx, tx, snap.Session.ID); err != nil {
		return nil, err
	}

	return &snap, tx.Commit()
}

func loadParticipants(ctx context.Context, tx *sql.Tx, sessionID string) ([]game.Participant, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT user_id, username, is_current_turn, is_game_master, points, join_order, joined_at
		FROM session_participants
		WHERE session_id = ?
		ORDER BY join_order ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []game.Participant
	for rows.Next() {
		var p game.Participant
		var joinedAt int64
		if err := rows.Scan(&p.UserID, &p.Username, &p.IsCurrentTurn, &p.IsGameMaster, &p.Points, &p.JoinOrder, &joinedAt); err != nil {
			return nil, err
		}
		p.JoinedAt = time.Unix(joinedAt, 0)
		out = append(out, p)
	}
	return out, rows.Err()
}

func loadQuestionStates(ctx context.Context, tx *sql.Tx, sessionID string) ([]game.QuestionState, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT question_id, prompt, correct_answer, points, sort_order,
		       is_answered, is_current_question, is_robbing_allowed, answered_by_user_id
		FROM session_questions
		WHERE session_id = ?
		ORDER BY sort_order ASC, question_id ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []game.QuestionState
	for rows.Next() {
		var q game.QuestionState
		var answeredBy sql.NullString
		if err := rows.Scan(
			&q.QuestionID, &q.Prompt, &q.CorrectAnswer, &q.Points, &q.SortOrder,
			&q.IsAnswered, &q.IsCurrentQuestion, &q.IsRobbingAllowed, &answeredBy,
		); err != nil {
			return nil, err
		}
		q.AnsweredByUserID = answeredBy.String
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLiteSessionStore) AddParticipant(ctx context.Context, sessionID string, p game.Participant) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_participants (session_id, user_id, username, is_current_turn, is_game_master, points, join_order, joined_at)
		VALUES (?, ?, ?, 0, ?, 0,
			(SELECT COALESCE(MAX(join_order), 0) + 1 FROM session_participants WHERE session_id = ?),
			?)
	`, sessionID, p.UserID, p.Username, p.IsGameMaster, sessionID, p.JoinedAt.Unix())
	if err != nil {
		return err
	}
	return s.touch(ctx, s.db, sessionID)
}

func (s *SQLiteSessionStore) RemoveParticipant(ctx context.Context, sessionID, userID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session_participants WHERE session_id = ? AND user_id = ?", sessionID, userID)
	if err != nil {
		return err
	}
	return s.touch(ctx, s.db, sessionID)
}

func (s *SQLiteSessionStore) SetStarted(ctx context.Context, sessionID string) error {
	return s.execSession(ctx, "UPDATE game_sessions SET started = 1, updated_at = ? WHERE id = ?", sessionID)
}

func (s *SQLiteSessionStore) SetCompleted(ctx context.Context, sessionID string) error {
	return s.execSession(ctx, "UPDATE game_sessions SET completed = 1, updated_at = ? WHERE id = ?", sessionID)
}

// SetCurrentTurn limpa a vez anterior e marca o novo jogador num único UPDATE.
func (s *SQLiteSessionStore) SetCurrentTurn(ctx context.Context, sessionID, userID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE session_participants
		SET is_current_turn = CASE WHEN user_id = ? THEN 1 ELSE 0 END
		WHERE session_id = ?
	`, userID, sessionID)
	if err != nil {
		return err
	}
	return s.touch(ctx, s.db, sessionID)
}

func (s *SQLiteSessionStore) SelectQuestion(ctx context.Context, sessionID, questionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE session_questions SET is_current_question = 0 WHERE session_id = ? AND question_id <> ?",
		sessionID, questionID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE session_questions SET is_current_question = 1 WHERE session_id = ? AND question_id = ?",
		sessionID, questionID); err != nil {
		return err
	}
	if err := s.touch(ctx, tx, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteSessionStore) SetRobbingAllowed(ctx context.Context, sessionID, questionID string, allowed bool) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE session_questions SET is_robbing_allowed = ? WHERE session_id = ? AND question_id = ?",
		allowed, sessionID, questionID)
	if err != nil {
		return err
	}
	return s.touch(ctx, s.db, sessionID)
}

func (s *SQLiteSessionStore) RecordCorrectAnswer(ctx context.Context, sessionID, questionID, userID string, points int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE session_questions
		SET is_answered = 1, is_current_question = 0, is_robbing_allowed = 0, answered_by_user_id = ?
		WHERE session_id = ? AND question_id = ? AND is_answered = 0
	`, userID, sessionID, questionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return game.ErrAlreadyAnswered
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE session_participants SET points = points + ? WHERE session_id = ? AND user_id = ?",
		points, sessionID, userID); err != nil {
		return err
	}
	if err := s.touch(ctx, tx, sessionID); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteSession remove a sessão; participantes e perguntas saem via ON DELETE CASCADE.
func (s *SQLiteSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Apaga os filhos explicitamente caso foreign_keys esteja desligado na conexão.
	for _, q := range []string{
		"DELETE FROM session_participants WHERE session_id = ?",
		"DELETE FROM session_questions WHERE session_id = ?",
		"DELETE FROM game_sessions WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, sessionID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteSessionStore) touch(ctx context.Context, e execer, sessionID string) error {
	_, err := e.ExecContext(ctx, "UPDATE game_sessions SET updated_at = ? WHERE id = ?", time.Now().Unix(), sessionID)
	return err
}

func (s *SQLiteSessionStore) execSession(ctx context.Context, query, sessionID string) error {
	_, err := s.db.ExecContext(ctx, query, time.Now().Unix(), sessionID)
	return err
}
