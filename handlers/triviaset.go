package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"triviahub/trivia"
	"triviahub/utils"
)

// POST /api/sets
func (h *Handler) CreateTriviaSet(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input trivia.SetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	set, err := h.Service.CreateTriviaSet(user.ID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, set)
}

// GET /api/sets/{setID}
func (h *Handler) GetSetByID(w http.ResponseWriter, r *http.Request) {
	setID := r.PathValue("setID")
	if setID == "" {
		http.Error(w, "Set ID is required", http.StatusBadRequest)
		return
	}

	set, err := h.Service.GetTriviaSet(setID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// PUT /api/sets/{setID}
func (h *Handler) UpdateSetByID(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	setID := r.PathValue("setID")
	var input trivia.SetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	set, err := h.Service.EditTriviaSet(user.ID, setID, input)
	if err != nil {
		log.Printf("UpdateSetByID: edit of set %s by userID=%d failed: %v", setID, user.ID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// DELETE /api/sets/{setID}
func (h *Handler) DeleteSetByID(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	setID := r.PathValue("setID")
	if err := h.Service.DeleteTriviaSet(user.ID, setID); err != nil {
		log.Printf("DeleteSetByID: delete of set %s by userID=%d failed: %v", setID, user.ID, err)
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /api/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sets, err := h.Service.SetsForUser(user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sets)
}

// GET /api/search?q=term
func (h *Handler) SearchTriviaSets(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	sets, err := h.Service.Search(term)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sets)
}
