package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mertkara/recipe-box/internal/repository/sqlite/migrations"
)

// DB wraps a SQLite database handle and hands out repositories.
type DB struct {
	sql *sql.DB
}

// New opens a SQLite database at the given path and configures it for
// use. It enables WAL mode and foreign key enforcement.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL improves concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single writer connection keeps SQLite happy under concurrency;
	// cross-request coordination is delegated to transactions.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sql: db}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.sql)
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserRepository { return &UserRepository{db: db.sql} }

// Recipes returns the recipe repository backed by this database.
func (db *DB) Recipes() *RecipeRepository { return &RecipeRepository{db: db.sql} }

// Comments returns the comment repository backed by this database.
func (db *DB) Comments() *CommentRepository { return &CommentRepository{db: db.sql} }

// isUniqueConstraintError checks if the error is a SQLite unique
// constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return containsString(msg, "UNIQUE constraint failed") ||
		containsString(msg, "unique constraint")
}

func containsString(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
