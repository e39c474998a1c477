package handler

import (
	"net/http"

	"github.com/mertkara/recipe-box/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	tokens *service.TokenService,
	auth *service.AuthService,
	recipes *service.RecipeService,
	comments *service.CommentService,
) {
	authHandler := NewAuthHandler(auth)
	recipeHandler := NewRecipeHandler(recipes)
	commentHandler := NewCommentHandler(comments)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(tokens, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)

	// Public recipe reads.
	mux.HandleFunc("GET /api/recipes/popular", recipeHandler.HandlePopular)
	mux.HandleFunc("GET /api/recipes/recent", recipeHandler.HandleRecent)
	mux.HandleFunc("GET /api/recipes/random", recipeHandler.HandleRandom)
	mux.HandleFunc("GET /api/recipes/{id}", recipeHandler.HandleGet)
	mux.HandleFunc("GET /api/authors/top", recipeHandler.HandleTopAuthors)

	// Authenticated recipe operations.
	mux.Handle("POST /api/recipes", protected(recipeHandler.HandleCreate))
	mux.Handle("PATCH /api/recipes/{id}", protected(recipeHandler.HandleUpdate))
	mux.Handle("DELETE /api/recipes/{id}", protected(recipeHandler.HandleDelete))
	mux.Handle("POST /api/recipes/{id}/like", protected(recipeHandler.HandleToggleLike))
	mux.Handle("GET /api/recipes/mine", protected(recipeHandler.HandleMine))
	mux.Handle("GET /api/recipes/favorites", protected(recipeHandler.HandleFavorites))

	// Comments.
	mux.HandleFunc("GET /api/recipes/{id}/comments", commentHandler.HandleListByRecipe)
	mux.Handle("POST /api/recipes/{id}/comments", protected(commentHandler.HandleCreate))
	mux.Handle("PATCH /api/comments/{id}", protected(commentHandler.HandleUpdate))
	mux.Handle("DELETE /api/comments/{id}", protected(commentHandler.HandleDelete))
}
