package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mertkara/recipe-box/internal/domain"
)

// CreateRecipeInput holds the fields needed to publish a new recipe.
type CreateRecipeInput struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions []domain.InstructionStep
}

// RecipeService handles recipe CRUD, the like toggle, and the ranking
// queries. Mutations on existing recipes check existence first, then
// ownership.
type RecipeService struct {
	recipes domain.RecipeRepository
	users   domain.UserRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes domain.RecipeRepository, users domain.UserRepository) *RecipeService {
	return &RecipeService{recipes: recipes, users: users}
}

// Create publishes a new recipe owned by authorID, with no likes.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput, authorID string) (*domain.Recipe, error) {
	if err := validateRecipeFields(input.Title, input.Ingredients, input.Instructions); err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		AuthorID:     authorID,
		Title:        input.Title,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

// GetByID returns a recipe or ErrRecipeNotFound.
func (s *RecipeService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

// Update applies a partial patch to a recipe owned by callerID and
// returns the updated snapshot. Only title, description, ingredients,
// and instructions can change here.
func (s *RecipeService) Update(ctx context.Context, id string, patch domain.RecipePatch, callerID string) (*domain.Recipe, error) {
	recipe, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.HasPermission(recipe, callerID) {
		return nil, domain.ErrForbidden
	}

	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = patch.Ingredients
	}
	if patch.Instructions != nil {
		recipe.Instructions = patch.Instructions
	}
	if err := validateRecipeFields(recipe.Title, recipe.Ingredients, recipe.Instructions); err != nil {
		return nil, err
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return recipe, nil
}

// Remove deletes a recipe owned by callerID and returns the
// pre-deletion snapshot.
func (s *RecipeService) Remove(ctx context.Context, id, callerID string) (*domain.Recipe, error) {
	recipe, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.HasPermission(recipe, callerID) {
		return nil, domain.ErrForbidden
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("delete recipe: %w", err)
	}
	return recipe, nil
}

// ToggleLike flips userID's like on the recipe: absent likes are
// added, present likes removed. Any authenticated user may like any
// recipe, their own included. Returns the post-toggle recipe.
func (s *RecipeService) ToggleLike(ctx context.Context, id, userID string) (*domain.Recipe, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.ToggleLike(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return recipe, nil
}

// Popular returns up to limit recipes ordered by like count descending.
func (s *RecipeService) Popular(ctx context.Context, limit int) ([]domain.Recipe, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return s.recipes.ListPopular(ctx, limit)
}

// Recent returns up to limit recipes ordered by creation time, newest
// first.
func (s *RecipeService) Recent(ctx context.Context, limit int) ([]domain.Recipe, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return s.recipes.ListRecent(ctx, limit)
}

// Random returns one recipe picked uniformly at random, or
// ErrRecipeNotFound when there are none.
func (s *RecipeService) Random(ctx context.Context) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetRandom(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get random recipe: %w", err)
	}
	return recipe, nil
}

// Own returns all recipes authored by callerID.
func (s *RecipeService) Own(ctx context.Context, callerID string) ([]domain.Recipe, error) {
	return s.recipes.ListByAuthor(ctx, callerID)
}

// Favorites returns up to limit recipes that callerID currently likes.
func (s *RecipeService) Favorites(ctx context.Context, callerID string, limit int) ([]domain.Recipe, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return s.recipes.ListLikedBy(ctx, callerID, limit)
}

// TopAuthors returns up to limit users ordered by how many recipes
// they have published.
func (s *RecipeService) TopAuthors(ctx context.Context, limit int) ([]domain.TopAuthor, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	return s.users.TopAuthors(ctx, limit)
}

func validateRecipeFields(title string, ingredients []string, instructions []domain.InstructionStep) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("%w: must have at least one ingredient", domain.ErrInvalidInput)
	}
	if len(instructions) == 0 {
		return fmt.Errorf("%w: must have at least one step instruction", domain.ErrInvalidInput)
	}
	for i, step := range instructions {
		if step.Step < 1 {
			return fmt.Errorf("%w: instruction %d step number must be positive", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}

func validateLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}
	return nil
}
