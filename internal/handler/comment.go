package handler

import (
	"net/http"

	"github.com/mertkara/recipe-box/internal/domain"
	"github.com/mertkara/recipe-box/internal/service"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// HandleCreate adds a comment by the caller to a recipe.
// POST /api/recipes/{id}/comments
// Request: {"content":"..."}
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.comments.Create(r.Context(), r.PathValue("id"), req.Content, SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentDTO(comment))
}

// HandleListByRecipe returns all comments on a recipe, oldest first.
// GET /api/recipes/{id}/comments
func (h *CommentHandler) HandleListByRecipe(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListByRecipe(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentDTOs(comments))
}

// HandleUpdate edits a comment owned by the caller.
// PATCH /api/comments/{id}
// Request: {"content":"..."}
func (h *CommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content *string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	patch := domain.CommentPatch{Content: req.Content}
	comment, err := h.comments.Update(r.Context(), r.PathValue("id"), patch, SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentDTO(comment))
}

// HandleDelete deletes a comment owned by the caller and returns the
// deleted snapshot.
// DELETE /api/comments/{id}
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	comment, err := h.comments.Remove(r.Context(), r.PathValue("id"), SubjectFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentDTO(comment))
}
