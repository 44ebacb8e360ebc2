package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quizarena/internal/domain/user"
	"quizarena/internal/ports"
)

// SQLiteUserRepository implementa UserRepository para SQLite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository cria uma nova instância do repositório.
func NewSQLiteUserRepository(db *sql.DB) ports.UserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create insere um novo usuário no banco.
func (r *SQLiteUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.CreatedAt.Unix(),
		u.UpdatedAt.Unix(),
	)
	return err
}

// FindByEmail busca um usuário pelo email.
func (r *SQLiteUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// FindByUsername busca pelo nome de usuário, ignorando caixa.
func (r *SQLiteUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE username = ? COLLATE NOCASE
	`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

// FindByID busca um usuário pelo ID.
func (r *SQLiteUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func scanUser(row *sql.Row) (*user.User, error) {
	var u user.User
	var createdAt, updatedAt int64
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Não encontrado
		}
		return nil, err
	}

	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)
	return &u, nil
}
