package handler

import (
	"time"

	"github.com/mertkara/recipe-box/internal/domain"
	"github.com/mertkara/recipe-box/internal/service"
)

// AuthDTO is the JSON representation of a signup/login result.
type AuthDTO struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

func toAuthDTO(p *service.AuthPayload) AuthDTO {
	return AuthDTO{Token: p.Token, Name: p.Name}
}

// InstructionStepDTO is the JSON representation of one instruction step.
type InstructionStepDTO struct {
	Step   int    `json:"step"`
	Detail string `json:"detail"`
}

// RecipeDTO is the JSON representation of a recipe.
type RecipeDTO struct {
	ID            string               `json:"id"`
	AuthorID      string               `json:"authorId"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Ingredients   []string             `json:"ingredients"`
	Instructions  []InstructionStepDTO `json:"instructions"`
	Likes         []string             `json:"likes"`
	NumberOfLikes int                  `json:"numberOfLikes"`
	CreatedAt     string               `json:"createdAt"`
}

func toRecipeDTO(r *domain.Recipe) RecipeDTO {
	steps := make([]InstructionStepDTO, len(r.Instructions))
	for i, s := range r.Instructions {
		steps[i] = InstructionStepDTO{Step: s.Step, Detail: s.Detail}
	}
	likes := r.Likes
	if likes == nil {
		likes = []string{}
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return RecipeDTO{
		ID:            r.ID,
		AuthorID:      r.AuthorID,
		Title:         r.Title,
		Description:   r.Description,
		Ingredients:   ingredients,
		Instructions:  steps,
		Likes:         likes,
		NumberOfLikes: r.NumberOfLikes,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func toRecipeDTOs(recipes []domain.Recipe) []RecipeDTO {
	dtos := make([]RecipeDTO, len(recipes))
	for i := range recipes {
		dtos[i] = toRecipeDTO(&recipes[i])
	}
	return dtos
}

// CommentDTO is the JSON representation of a comment.
type CommentDTO struct {
	ID        string `json:"id"`
	RecipeID  string `json:"recipeId"`
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func toCommentDTO(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		RecipeID:  c.RecipeID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentDTOs(comments []domain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i := range comments {
		dtos[i] = toCommentDTO(&comments[i])
	}
	return dtos
}

// TopAuthorDTO is the JSON representation of a top-authors entry.
type TopAuthorDTO struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CreatedAt   string `json:"createdAt"`
	RecipeCount int    `json:"recipeCount"`
}

func toTopAuthorDTOs(authors []domain.TopAuthor) []TopAuthorDTO {
	dtos := make([]TopAuthorDTO, len(authors))
	for i, a := range authors {
		dtos[i] = TopAuthorDTO{
			UserID:      a.UserID,
			Name:        a.Name,
			Email:       a.Email,
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
			RecipeCount: a.RecipeCount,
		}
	}
	return dtos
}
