package domain

import (
	"context"
	"time"
)

// Comment is a user comment on a recipe. AuthorID is fixed at creation.
type Comment struct {
	ID        string
	RecipeID  string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

// Owner returns the id of the user allowed to modify the comment.
func (c *Comment) Owner() string { return c.AuthorID }

// CommentPatch is a partial update of a comment. A nil field is left
// unchanged.
type CommentPatch struct {
	Content *string
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id string) error
	ListByRecipe(ctx context.Context, recipeID string) ([]Comment, error)
}
