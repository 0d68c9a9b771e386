package utils

import (
	"context"
	"net/http"

	"triviahub/models"
)

type contextKey string

const userContextKey contextKey = "user"

// ContextWithUser attaches the authenticated user for downstream handlers.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser retrieves the authenticated user attached by the auth middleware.
func GetUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	return user, ok
}
