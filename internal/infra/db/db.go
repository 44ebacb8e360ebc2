package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"quizarena/internal/infra/logger"

	_ "github.com/ncruces/go-sqlite3/driver" // driver "sqlite3" sobre wazero, sem cgo
	_ "github.com/ncruces/go-sqlite3/embed"
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewSQLiteConnection abre o banco em dsn (arquivo ou ":memory:") com foreign keys ativas.
func NewSQLiteConnection(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	// Um único escritor: evita SQLITE_BUSY e mantém ":memory:" como um só banco.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("habilitar foreign keys: %w", err)
	}

	logger.Info("Banco SQLite aberto", "dsn", dsn)
	return db, nil
}

// RunMigrations aplica, em ordem de nome, os arquivos ainda não registrados em schema_migrations.
// Cada arquivo roda em sua própria transação.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at INTEGER NOT NULL
		)`); err != nil {
		return fmt.Errorf("criar schema_migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("listar migrações: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)

	for _, name := range names {
		var n int
		if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, name).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := apply(db, name); err != nil {
			return fmt.Errorf("migração %s: %w", name, err)
		}
		logger.Info("Migração aplicada", "arquivo", name)
	}
	return nil
}

func apply(db *sql.DB, name string) error {
	script, err := migrations.ReadFile("migrations/" + name)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(string(script)); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`, name, time.Now().Unix()); err != nil {
		return err
	}
	return tx.Commit()
}
