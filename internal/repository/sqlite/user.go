package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mertkara/recipe-box/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.PasswordHash, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("insert user: %w", err)
	}

	user.CreatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM users WHERE `+column+` = ?`, value,
	).Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by %s: %w", column, err)
	}
	return user, nil
}

// TopAuthors returns users ordered by how many recipes they have
// published, most prolific first. Users without recipes count as zero.
func (r *UserRepository) TopAuthors(ctx context.Context, limit int) ([]domain.TopAuthor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.name, u.email, u.created_at, COUNT(rec.id) AS recipe_count
		 FROM users u
		 LEFT JOIN recipes rec ON rec.author_id = u.id
		 GROUP BY u.id, u.name, u.email, u.created_at
		 ORDER BY recipe_count DESC, u.id
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top authors: %w", err)
	}
	defer rows.Close()

	var authors []domain.TopAuthor
	for rows.Next() {
		var a domain.TopAuthor
		if err := rows.Scan(&a.UserID, &a.Name, &a.Email, &a.CreatedAt, &a.RecipeCount); err != nil {
			return nil, fmt.Errorf("scan top author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}
