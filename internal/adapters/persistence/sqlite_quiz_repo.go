package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quizarena/internal/domain/quiz"
)

const quizColumns = `qz.id, qz.owner_id, qz.title, COALESCE(qz.description, ''), qz.status, qz.created_at, qz.updated_at`

// SQLiteQuizRepository guarda os quizzes. Perguntas ficam em SQLiteQuestionRepository
// mas são carregadas junto em FindByID.
type SQLiteQuizRepository struct {
	db *sql.DB
}

func NewSQLiteQuizRepository(db *sql.DB) *SQLiteQuizRepository {
	return &SQLiteQuizRepository{db: db}
}

func (r *SQLiteQuizRepository) Save(ctx context.Context, q *quiz.Quiz) error {
	return r.upsert(ctx, q)
}

func (r *SQLiteQuizRepository) Update(ctx context.Context, q *quiz.Quiz) error {
	return r.upsert(ctx, q)
}

// upsert grava os metadados. owner_id e created_at nunca mudam depois do INSERT.
func (r *SQLiteQuizRepository) upsert(ctx context.Context, q *quiz.Quiz) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quizzes (id, owner_id, title, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			status = excluded.status,
			updated_at = excluded.updated_at`,
		q.ID, q.OwnerID, q.Title, q.Description, q.Status, q.CreatedAt.Unix(), q.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("gravar quiz %s: %w", q.ID, err)
	}
	return nil
}

// FindByID carrega quiz e perguntas em uma única consulta. Retorna nil, nil se não existir.
func (r *SQLiteQuizRepository) FindByID(ctx context.Context, id string) (*quiz.Quiz, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+quizColumns+`,
			qs.id, qs.prompt, qs.answer, qs.points, qs.sort_order, qs.created_at, qs.updated_at
		FROM quizzes qz
		LEFT JOIN questions qs ON qs.quiz_id = qz.id
		WHERE qz.id = ?
		ORDER BY qs.sort_order, qs.created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var q *quiz.Quiz
	for rows.Next() {
		var head quiz.Quiz
		var createdAt, updatedAt int64
		var qID, prompt, answer sql.NullString
		var points, order, qCreated, qUpdated sql.NullInt64

		if err := rows.Scan(
			&head.ID, &head.OwnerID, &head.Title, &head.Description, &head.Status, &createdAt, &updatedAt,
			&qID, &prompt, &answer, &points, &order, &qCreated, &qUpdated,
		); err != nil {
			return nil, err
		}

		if q == nil {
			head.CreatedAt = time.Unix(createdAt, 0)
			head.UpdatedAt = time.Unix(updatedAt, 0)
			head.Questions = []quiz.Question{}
			q = &head
		}
		if !qID.Valid {
			continue
		}
		q.Questions = append(q.Questions, quiz.Question{
			ID:        qID.String,
			QuizID:    q.ID,
			Prompt:    prompt.String,
			Answer:    answer.String,
			Points:    int(points.Int64),
			SortOrder: int(order.Int64),
			CreatedAt: time.Unix(qCreated.Int64, 0),
			UpdatedAt: time.Unix(qUpdated.Int64, 0),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return q, nil
}

// FindByOwnerID lista os quizzes do autor, mais recentes primeiro, sem as perguntas.
func (r *SQLiteQuizRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*quiz.Quiz, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+quizColumns+`
		FROM quizzes qz
		WHERE qz.owner_id = ?
		ORDER BY qz.created_at DESC, qz.id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*quiz.Quiz{}
	for rows.Next() {
		var q quiz.Quiz
		var createdAt, updatedAt int64
		if err := rows.Scan(&q.ID, &q.OwnerID, &q.Title, &q.Description, &q.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		q.CreatedAt = time.Unix(createdAt, 0)
		q.UpdatedAt = time.Unix(updatedAt, 0)
		out = append(out, &q)
	}
	return out, rows.Err()
}

// Delete apaga o quiz e suas perguntas na mesma transação.
func (r *SQLiteQuizRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
