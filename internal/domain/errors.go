package domain

import "errors"

var (
	// ErrNotFound is the generic absence signal returned by repositories.
	// Services translate it into the entity-specific errors below.
	ErrNotFound = errors.New("not found")

	ErrUnauthenticated    = errors.New("you must login to get this feature")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("you aren't allowed to modify")
	ErrRecipeNotFound     = errors.New("Recipe with this credential doesn't exist")
	ErrCommentNotFound    = errors.New("Comment with this credential doesn't exist")
	ErrDuplicateUser      = errors.New("user with these credentials already exists")
	ErrNoSuchAccount      = errors.New("there is no account with this credential, please sign up")
	ErrInvalidCredentials = errors.New("credentials aren't correct")
	ErrInvalidInput       = errors.New("invalid input")
)
