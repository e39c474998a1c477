package domain

// Owned is any entity that records the user who created it.
type Owned interface {
	Owner() string
}

// HasPermission reports whether userID may modify the given resource.
// Only the author of a recipe or comment may update or delete it.
func HasPermission[T Owned](resource T, userID string) bool {
	return resource.Owner() == userID
}
