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

// RecipeRepository implements domain.RecipeRepository using SQLite.
type RecipeRepository struct {
	db *sql.DB
}

const recipeColumns = "id, author_id, title, description, number_of_likes, created_at"

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (id, author_id, title, description, number_of_likes, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		recipe.ID, recipe.AuthorID, recipe.Title, recipe.Description, now,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}

	if err := insertChildren(ctx, tx, recipe.ID, recipe.Ingredients, recipe.Instructions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	recipe.Likes = nil
	recipe.NumberOfLikes = 0
	recipe.CreatedAt = now
	return nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id,
	).Scan(&recipe.ID, &recipe.AuthorID, &recipe.Title, &recipe.Description,
		&recipe.NumberOfLikes, &recipe.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query recipe: %w", err)
	}

	if err := r.loadChildren(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update rewrites the editable fields of a recipe: title, description,
// ingredients, and instructions. The author, likes, and like count are
// never touched here.
func (r *RecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE recipes SET title = ?, description = ? WHERE id = ?`,
		recipe.Title, recipe.Description, recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	// Replace child rows wholesale; they are small and ordered.
	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = ?", recipe.ID); err != nil {
		return fmt.Errorf("delete ingredients: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_instructions WHERE recipe_id = ?", recipe.ID); err != nil {
		return fmt.Errorf("delete instructions: %w", err)
	}
	if err := insertChildren(ctx, tx, recipe.ID, recipe.Ingredients, recipe.Instructions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
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

// ToggleLike flips userID's like on the recipe. The membership change
// and the count recompute happen in one transaction, so two concurrent
// toggles on the same recipe cannot lose an update.
func (r *RecipeRepository) ToggleLike(ctx context.Context, recipeID, userID string) (*domain.Recipe, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"DELETE FROM recipe_likes WHERE recipe_id = ? AND user_id = ?",
		recipeID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("remove like: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}

	if removed == 0 {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_likes (recipe_id, user_id, liked_at) VALUES (?, ?, ?)",
			recipeID, userID, time.Now().UTC(),
		)
		if err != nil {
			return nil, fmt.Errorf("add like: %w", err)
		}
	}

	result, err = tx.ExecContext(ctx,
		`UPDATE recipes
		 SET number_of_likes = (SELECT COUNT(*) FROM recipe_likes WHERE recipe_id = ?)
		 WHERE id = ?`,
		recipeID, recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("update like count: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.GetByID(ctx, recipeID)
}

func (r *RecipeRepository) ListPopular(ctx context.Context, limit int) ([]domain.Recipe, error) {
	return r.list(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 ORDER BY number_of_likes DESC, id LIMIT ?`, limit)
}

func (r *RecipeRepository) ListRecent(ctx context.Context, limit int) ([]domain.Recipe, error) {
	return r.list(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 ORDER BY created_at DESC, id LIMIT ?`, limit)
}

func (r *RecipeRepository) GetRandom(ctx context.Context) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes ORDER BY RANDOM() LIMIT 1`,
	).Scan(&recipe.ID, &recipe.AuthorID, &recipe.Title, &recipe.Description,
		&recipe.NumberOfLikes, &recipe.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query random recipe: %w", err)
	}

	if err := r.loadChildren(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Recipe, error) {
	return r.list(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 WHERE author_id = ? ORDER BY created_at DESC, id`, authorID)
}

func (r *RecipeRepository) ListLikedBy(ctx context.Context, userID string, limit int) ([]domain.Recipe, error) {
	return r.list(ctx,
		`SELECT r.id, r.author_id, r.title, r.description, r.number_of_likes, r.created_at
		 FROM recipes r
		 JOIN recipe_likes l ON l.recipe_id = r.id
		 WHERE l.user_id = ?
		 ORDER BY l.liked_at DESC, r.id LIMIT ?`, userID, limit)
}

func (r *RecipeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.AuthorID, &recipe.Title, &recipe.Description,
			&recipe.NumberOfLikes, &recipe.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range recipes {
		if err := r.loadChildren(ctx, &recipes[i]); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

func (r *RecipeRepository) loadChildren(ctx context.Context, recipe *domain.Recipe) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position", recipe.ID)
	if err != nil {
		return fmt.Errorf("query ingredients: %w", err)
	}
	defer rows.Close()

	recipe.Ingredients = nil
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan ingredient: %w", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx,
		"SELECT step, detail FROM recipe_instructions WHERE recipe_id = ? ORDER BY position", recipe.ID)
	if err != nil {
		return fmt.Errorf("query instructions: %w", err)
	}
	defer rows.Close()

	recipe.Instructions = nil
	for rows.Next() {
		var step domain.InstructionStep
		if err := rows.Scan(&step.Step, &step.Detail); err != nil {
			return fmt.Errorf("scan instruction: %w", err)
		}
		recipe.Instructions = append(recipe.Instructions, step)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx,
		"SELECT user_id FROM recipe_likes WHERE recipe_id = ? ORDER BY liked_at, user_id", recipe.ID)
	if err != nil {
		return fmt.Errorf("query likes: %w", err)
	}
	defer rows.Close()

	recipe.Likes = nil
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("scan like: %w", err)
		}
		recipe.Likes = append(recipe.Likes, userID)
	}
	return rows.Err()
}

func insertChildren(ctx context.Context, tx *sql.Tx, recipeID string, ingredients []string, instructions []domain.InstructionStep) error {
	for i, name := range ingredients {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_ingredients (recipe_id, position, name) VALUES (?, ?, ?)",
			recipeID, i, name,
		); err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
	}
	for i, step := range instructions {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_instructions (recipe_id, position, step, detail) VALUES (?, ?, ?, ?)",
			recipeID, i, step.Step, step.Detail,
		); err != nil {
			return fmt.Errorf("insert instruction: %w", err)
		}
	}
	return nil
}
