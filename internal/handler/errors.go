package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mertkara/recipe-box/internal/domain"
)

// writeServiceError translates a domain failure into the wire error
// envelope. The most specific condition wins: a uniqueness violation
// maps to 409 before anything falls through to a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateUser):
		writeError(w, http.StatusConflict, domain.ErrDuplicateUser.Error())
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	case errors.Is(err, domain.ErrNoSuchAccount):
		writeError(w, http.StatusNotFound, domain.ErrNoSuchAccount.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, domain.ErrForbidden.Error())
	case errors.Is(err, domain.ErrRecipeNotFound):
		writeError(w, http.StatusNotFound, domain.ErrRecipeNotFound.Error())
	case errors.Is(err, domain.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, domain.ErrCommentNotFound.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
