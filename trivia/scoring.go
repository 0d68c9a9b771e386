package trivia

import (
	"errors"
	"log"
	"strconv"

	"gorm.io/gorm"

	"triviahub/models"
)

// ScoreAnswers counts the questions whose submitted answer matches the id of
// the option flagged correct. Both question types score the same way: the
// submitted value is the chosen option's id as a decimal string. Unanswered
// questions and questions with no correct option contribute 0, so the result
// is always within [0, number of questions].
func ScoreAnswers(set *models.TriviaSet, answers map[uint]string) int {
	score := 0
	for _, question := range set.Questions {
		correct, ok := correctOption(question)
		if !ok {
			continue
		}
		submitted, ok := answers[question.ID]
		if !ok {
			continue
		}
		if submitted == strconv.FormatUint(uint64(correct.ID), 10) {
			score++
		}
	}
	return score
}

// correctOption returns the first option flagged correct, in iteration order.
func correctOption(q models.Question) (models.Option, bool) {
	for _, option := range q.Options {
		if option.IsCorrect {
			return option, true
		}
	}
	return models.Option{}, false
}

// SubmitAnswers scores a play of the set and upserts the actor's UserScore
// row for it: the first submission creates the row, later ones overwrite it.
// The top-scores cache is not touched here; see TopScores for the staleness
// contract.
func (s *Service) SubmitAnswers(actorID uint, publicID string, answers map[uint]string) (int, error) {
	set, err := s.GetTriviaSet(publicID)
	if err != nil {
		return 0, err
	}

	score := ScoreAnswers(set, answers)

	var existing models.UserScore
	err = s.db.Where("user_id = ? AND trivia_set_id = ?", actorID, set.ID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := models.UserScore{UserID: actorID, TriviaSetID: set.ID, Score: score}
		if err := s.db.Create(&record).Error; err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		existing.Score = score
		if err := s.db.Save(&existing).Error; err != nil {
			return 0, err
		}
	}

	log.Printf("SubmitAnswers: userID=%d set=%s score=%d/%d", actorID, publicID, score, len(set.Questions))
	return score, nil
}
