package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"triviahub/utils"
)

// POST /api/sets/{setID}/submissions
func (h *Handler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	setID := r.PathValue("setID")
	if setID == "" {
		http.Error(w, "Set ID is required", http.StatusBadRequest)
		return
	}

	// Answers come keyed by question id, each value the chosen option id
	// (or the id of the accepted-answer option for open-ended questions).
	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answers := make(map[uint]string, len(req.Answers))
	for key, value := range req.Answers {
		questionID, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			http.Error(w, "Invalid question id: "+key, http.StatusBadRequest)
			return
		}
		answers[uint(questionID)] = value
	}

	score, err := h.Service.SubmitAnswers(user.ID, setID, answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"score": score})
}

// GET /api/users/{userID}/top-scores
func (h *Handler) GetTopScores(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("userID")
	userID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	entries, err := h.Service.TopScores(uint(userID))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
