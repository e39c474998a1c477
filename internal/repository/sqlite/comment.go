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

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, recipe_id, author_id, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.RecipeID, comment.AuthorID, comment.Content, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	comment.CreatedAt = now
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	comment := &domain.Comment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, recipe_id, author_id, content, created_at
		 FROM comments WHERE id = ?`, id,
	).Scan(&comment.ID, &comment.RecipeID, &comment.AuthorID, &comment.Content, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query comment: %w", err)
	}
	return comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE comments SET content = ? WHERE id = ?",
		comment.Content, comment.ID,
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) ListByRecipe(ctx context.Context, recipeID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, recipe_id, author_id, content, created_at
		 FROM comments WHERE recipe_id = ? ORDER BY created_at, id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.RecipeID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
