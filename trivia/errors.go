package trivia

import "errors"

var (
	// ErrDuplicateIdentity is returned when a registration reuses an email or username.
	ErrDuplicateIdentity = errors.New("email or username already in use")
	// ErrInvalidCredentials is returned when login lookup or password check fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound indicates an unknown trivia set public id.
	ErrNotFound = errors.New("trivia set not found")
	// ErrUserNotFound indicates an unknown user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotOwner is returned when someone other than the creator tries to edit or delete a set.
	ErrNotOwner = errors.New("not the creator of this trivia set")
	// ErrValidation covers missing required fields and malformed question payloads.
	ErrValidation = errors.New("missing or invalid fields")
)
