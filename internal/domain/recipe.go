package domain

import (
	"context"
	"time"
)

// Recipe is a published recipe. AuthorID is fixed at creation and never
// changes. Likes holds the ids of users who currently like the recipe;
// NumberOfLikes is the denormalized count and always equals len(Likes)
// after a toggle completes.
type Recipe struct {
	ID            string
	AuthorID      string
	Title         string
	Description   string
	Ingredients   []string
	Instructions  []InstructionStep
	Likes         []string
	NumberOfLikes int
	CreatedAt     time.Time
}

// InstructionStep is one numbered step of a recipe's instructions.
type InstructionStep struct {
	Step   int
	Detail string
}

// Owner returns the id of the user allowed to modify the recipe.
func (r *Recipe) Owner() string { return r.AuthorID }

// LikedBy reports whether the given user currently likes the recipe.
func (r *Recipe) LikedBy(userID string) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// RecipePatch is a partial update of a recipe's editable fields.
// Nil fields are left unchanged. AuthorID, Likes, and NumberOfLikes are
// deliberately not patchable.
type RecipePatch struct {
	Title        *string
	Description  *string
	Ingredients  []string
	Instructions []InstructionStep
}

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id string) error

	// ToggleLike atomically flips the like of userID on the recipe and
	// recomputes the like count in the same transaction, then returns
	// the post-toggle recipe.
	ToggleLike(ctx context.Context, recipeID, userID string) (*Recipe, error)

	ListPopular(ctx context.Context, limit int) ([]Recipe, error)
	ListRecent(ctx context.Context, limit int) ([]Recipe, error)
	GetRandom(ctx context.Context) (*Recipe, error)
	ListByAuthor(ctx context.Context, authorID string) ([]Recipe, error)
	ListLikedBy(ctx context.Context, userID string, limit int) ([]Recipe, error)
}
