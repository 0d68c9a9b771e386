package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"triviahub/trivia"
)

// Handler exposes the trivia service over HTTP.
type Handler struct {
	Service *trivia.Service
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: encode failed: %v", err)
	}
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trivia.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, trivia.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, trivia.ErrNotOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, trivia.ErrNotFound), errors.Is(err, trivia.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, trivia.ErrDuplicateIdentity):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("writeServiceError: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
