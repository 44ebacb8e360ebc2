package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"quizarena/internal/domain/quiz"
)

type SQLiteQuestionRepository struct {
	db *sql.DB
}

func NewSQLiteQuestionRepository(db *sql.DB) *SQLiteQuestionRepository {
	return &SQLiteQuestionRepository{db: db}
}

func (r *SQLiteQuestionRepository) Save(ctx context.Context, q *quiz.Question) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO questions (id, quiz_id, prompt, answer, points, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.QuizID, q.Prompt, q.Answer, q.Points, q.SortOrder, q.CreatedAt.Unix(), q.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("gravar pergunta: %w", err)
	}
	return nil
}

// Update regrava conteúdo e posição. quiz_id não muda.
func (r *SQLiteQuestionRepository) Update(ctx context.Context, q *quiz.Question) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE questions SET prompt = ?, answer = ?, points = ?, sort_order = ?, updated_at = ?
		WHERE id = ? AND quiz_id = ?`,
		q.Prompt, q.Answer, q.Points, q.SortOrder, q.UpdatedAt.Unix(), q.ID, q.QuizID,
	)
	if err != nil {
		return fmt.Errorf("atualizar pergunta %s: %w", q.ID, err)
	}
	return nil
}

func (r *SQLiteQuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	return err
}

func (r *SQLiteQuestionRepository) Reorder(ctx context.Context, quizID string, questions []quiz.Question) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE questions SET sort_order = ?, updated_at = ? WHERE id = ? AND quiz_id = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range questions {
		if _, err := stmt.ExecContext(ctx, q.SortOrder, q.UpdatedAt.Unix(), q.ID, quizID); err != nil {
			return fmt.Errorf("reordenar pergunta %s: %w", q.ID, err)
		}
	}
	return tx.Commit()
}
