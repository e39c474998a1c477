package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mertkara/recipe-box/internal/domain"
)

// CommentService handles comments on recipes. A comment can only be
// created against an existing recipe, and only its author may change
// or delete it.
type CommentService struct {
	comments domain.CommentRepository
	recipes  *RecipeService
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments domain.CommentRepository, recipes *RecipeService) *CommentService {
	return &CommentService{comments: comments, recipes: recipes}
}

// Create adds a comment by authorID to the given recipe. Fails with
// ErrRecipeNotFound when the recipe does not exist.
func (s *CommentService) Create(ctx context.Context, recipeID, content, authorID string) (*domain.Comment, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	comment := &domain.Comment{
		RecipeID: recipeID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// GetByID returns a comment or ErrCommentNotFound.
func (s *CommentService) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

// Update applies a patch to a comment owned by callerID and returns
// the updated snapshot.
func (s *CommentService) Update(ctx context.Context, id string, patch domain.CommentPatch, callerID string) (*domain.Comment, error) {
	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.HasPermission(comment, callerID) {
		return nil, domain.ErrForbidden
	}

	if patch.Content != nil {
		comment.Content = *patch.Content
	}
	if comment.Content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

// Remove deletes a comment owned by callerID and returns the
// pre-deletion snapshot.
func (s *CommentService) Remove(ctx context.Context, id, callerID string) (*domain.Comment, error) {
	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.HasPermission(comment, callerID) {
		return nil, domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return comment, nil
}

// ListByRecipe returns all comments on a recipe, oldest first. Fails
// with ErrRecipeNotFound when the recipe does not exist.
func (s *CommentService) ListByRecipe(ctx context.Context, recipeID string) ([]domain.Comment, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.comments.ListByRecipe(ctx, recipeID)
}
