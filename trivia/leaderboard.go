package trivia

import (
	"errors"

	"gorm.io/gorm"

	"triviahub/models"
)

// topScoresLimit caps how many entries a leaderboard read returns.
const topScoresLimit = 3

// ScoreEntry is one leaderboard row: a score on a set the user has played.
type ScoreEntry struct {
	Score    int    `json:"score"`
	PublicID string `json:"triviaSetId"`
	SetTitle string `json:"setTitle"`
}

// TopScores returns the user's best scores across sets, highest first,
// truncated to topScoresLimit. Results are served from a per-user read-through
// cache for up to topScoresTTL, so a score submitted moments ago may not
// appear until the cached entry expires.
func (s *Service) TopScores(userID uint) ([]ScoreEntry, error) {
	if entries, ok := s.scores.get(userID); ok {
		return entries, nil
	}

	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	entries, err := s.topScoresFromDB(userID)
	if err != nil {
		return nil, err
	}

	s.scores.set(userID, entries)
	return entries, nil
}

func (s *Service) topScoresFromDB(userID uint) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	err := s.db.Model(&models.UserScore{}).
		Select("user_scores.score AS score, trivia_sets.public_id AS public_id, trivia_sets.set_title AS set_title").
		Joins("JOIN trivia_sets ON trivia_sets.id = user_scores.trivia_set_id AND trivia_sets.deleted_at IS NULL").
		Where("user_scores.user_id = ?", userID).
		Order("user_scores.score DESC").
		Limit(topScoresLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		entries = []ScoreEntry{}
	}
	return entries, nil
}
