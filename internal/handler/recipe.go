package handler

import (
	"net/http"
	"strconv"

	"github.com/mertkara/recipe-box/internal/domain"
	"github.com/mertkara/recipe-box/internal/service"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// RecipeHandler handles recipe HTTP requests.
type RecipeHandler struct {
	recipes *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

type instructionStepInput struct {
	Step   int    `json:"step"`
	Detail string `json:"detail"`
}

func toInstructionSteps(inputs []instructionStepInput) []domain.InstructionStep {
	if inputs == nil {
		return nil
	}
	steps := make([]domain.InstructionStep, len(inputs))
	for i, in := range inputs {
		steps[i] = domain.InstructionStep{Step: in.Step, Detail: in.Detail}
	}
	return steps
}

// HandleCreate publishes a new recipe owned by the caller.
// POST /api/recipes
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string                 `json:"title"`
		Description  string                 `json:"description"`
		Ingredients  []string               `json:"ingredients"`
		Instructions []instructionStepInput `json:"instructions"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	input := service.CreateRecipeInput{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: toInstructionSteps(req.Instructions),
	}
	recipe, err := h.recipes.Create(r.Context(), input, SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecipeDTO(recipe))
}

// HandleGet returns a single recipe.
// GET /api/recipes/{id}
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.recipes.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTO(recipe))
}

// HandleUpdate applies a partial update to a recipe owned by the caller.
// PATCH /api/recipes/{id}
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        *string                `json:"title"`
		Description  *string                `json:"description"`
		Ingredients  []string               `json:"ingredients"`
		Instructions []instructionStepInput `json:"instructions"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	patch := domain.RecipePatch{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: toInstructionSteps(req.Instructions),
	}
	recipe, err := h.recipes.Update(r.Context(), r.PathValue("id"), patch, SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipeDTO(recipe))
}

// HandleDelete deletes a recipe owned by the caller and returns the
// deleted snapshot.
// DELETE /api/recipes/{id}
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.recipes.Remove(r.Context(), r.PathValue("id"), SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTO(recipe))
}

// HandleToggleLike flips the caller's like on a recipe.
// POST /api/recipes/{id}/like
func (h *RecipeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.recipes.ToggleLike(r.Context(), r.PathValue("id"), SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTO(recipe))
}

// HandlePopular returns recipes ordered by like count.
// GET /api/recipes/popular?limit=10
func (h *RecipeHandler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.Popular(r.Context(), limitParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTOs(recipes))
}

// HandleRecent returns recipes ordered by creation time, newest first.
// GET /api/recipes/recent?limit=10
func (h *RecipeHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.Recent(r.Context(), limitParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTOs(recipes))
}

// HandleRandom returns one recipe picked at random.
// GET /api/recipes/random
func (h *RecipeHandler) HandleRandom(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.recipes.Random(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTO(recipe))
}

// HandleMine returns the caller's own recipes.
// GET /api/recipes/mine
func (h *RecipeHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.Own(r.Context(), SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTOs(recipes))
}

// HandleFavorites returns the recipes the caller currently likes.
// GET /api/recipes/favorites?limit=10
func (h *RecipeHandler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.Favorites(r.Context(), SubjectFromContext(r.Context()), limitParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeDTOs(recipes))
}

// HandleTopAuthors returns users ordered by published recipe count.
// GET /api/authors/top?limit=10
func (h *RecipeHandler) HandleTopAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.recipes.TopAuthors(r.Context(), limitParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopAuthorDTOs(authors))
}

// limitParam reads the limit query parameter, applying a default and a
// cap. Invalid values fall back to the default.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
