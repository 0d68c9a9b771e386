package trivia

import (
	"log"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"triviahub/models"
)

// maxQuestions bounds how many question slots a single submission may carry.
const maxQuestions = 20

// SetInput carries the scalar fields of a trivia set plus its question slots.
type SetInput struct {
	SetTitle   string          `json:"setTitle"`
	Category   string          `json:"category"`
	Difficulty string          `json:"difficulty"`
	Questions  []QuestionInput `json:"questions"`
}

// QuestionInput is one question slot. ID is zero for a question that does not
// exist yet (always on create, optionally on edit). For multiple_choice,
// Options lists the presented choices and CorrectIndex addresses the single
// correct one (0-based). For open_ended, Answer holds the accepted answer.
type QuestionInput struct {
	ID           uint          `json:"id,omitempty"`
	QuestionText string        `json:"questionText"`
	QuestionType string        `json:"questionType"`
	Options      []OptionInput `json:"options,omitempty"`
	CorrectIndex int           `json:"correctIndex"`
	Answer       string        `json:"answer,omitempty"`
}

type OptionInput struct {
	ID   uint   `json:"id,omitempty"`
	Text string `json:"text"`
}

// validateSetInput checks the scalar fields and trims the question sequence:
// processing stops at maxQuestions or at the first slot with no text.
// Each remaining slot must be well-formed, with exactly one correct option
// addressable for multiple_choice questions.
func validateSetInput(in SetInput) ([]QuestionInput, error) {
	if strings.TrimSpace(in.SetTitle) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Difficulty) == "" {
		return nil, ErrValidation
	}

	questions := in.Questions
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	for i, q := range questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			questions = questions[:i]
			break
		}
	}

	for _, q := range questions {
		switch q.QuestionType {
		case models.QuestionTypeMultipleChoice:
			if len(q.Options) == 0 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				return nil, ErrValidation
			}
			for _, opt := range q.Options {
				if strings.TrimSpace(opt.Text) == "" {
					return nil, ErrValidation
				}
			}
		case models.QuestionTypeOpenEnded:
			if strings.TrimSpace(q.Answer) == "" {
				return nil, ErrValidation
			}
		default:
			return nil, ErrValidation
		}
	}
	return questions, nil
}

// CreateTriviaSet creates a set with its questions and options in a single
// transaction, so a failed submission never leaves a half-populated set
// visible to readers.
func (s *Service) CreateTriviaSet(ownerID uint, in SetInput) (*models.TriviaSet, error) {
	questions, err := validateSetInput(in)
	if err != nil {
		return nil, err
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	set := models.TriviaSet{
		SetTitle:   in.SetTitle,
		Category:   in.Category,
		Difficulty: in.Difficulty,
		UserID:     ownerID,
		PublicID:   publicID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&set).Error; err != nil {
			return err
		}
		for _, q := range questions {
			if err := createQuestion(tx, set.ID, q); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("CreateTriviaSet: created set %s (%d questions) for userID=%d", publicID, len(questions), ownerID)
	return s.GetTriviaSet(publicID)
}

// EditTriviaSet updates a set's scalar fields and reconciles its questions
// and options against the submitted slots, keyed by id: id 0 appends, known
// ids update in place, stored rows missing from the payload are removed.
// The whole edit runs in one transaction; on any error, including a failed
// ownership check, the stored set is left untouched.
func (s *Service) EditTriviaSet(actorID uint, publicID string, in SetInput) (*models.TriviaSet, error) {
	questions, err := validateSetInput(in)
	if err != nil {
		return nil, err
	}

	set, err := s.findSetForOwner(actorID, publicID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"set_title":  in.SetTitle,
			"category":   in.Category,
			"difficulty": in.Difficulty,
		}
		if err := tx.Model(&models.TriviaSet{}).Where("id = ?", set.ID).Updates(updates).Error; err != nil {
			return err
		}
		return reconcileQuestions(tx, set, questions)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("EditTriviaSet: updated set %s for userID=%d", publicID, actorID)
	return s.GetTriviaSet(publicID)
}

// DeleteTriviaSet removes a set and everything hanging off it. Score rows are
// kept; leaderboard reads join on live sets and skip them.
func (s *Service) DeleteTriviaSet(actorID uint, publicID string) error {
	set, err := s.findSetForOwner(actorID, publicID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&models.Question{}).Select("id").Where("trivia_set_id = ?", set.ID)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trivia_set_id = ?", set.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TriviaSet{}, set.ID).Error
	})
	if err != nil {
		return err
	}

	log.Printf("DeleteTriviaSet: deleted set %s for userID=%d", publicID, actorID)
	return nil
}

func createQuestion(tx *gorm.DB, setID uint, in QuestionInput) error {
	question := models.Question{
		QuestionText: in.QuestionText,
		QuestionType: in.QuestionType,
		TriviaSetID:  setID,
	}
	if err := tx.Create(&question).Error; err != nil {
		return err
	}
	for _, opt := range optionRows(in) {
		opt.QuestionID = question.ID
		if err := tx.Create(&opt).Error; err != nil {
			return err
		}
	}
	return nil
}

// optionRows flattens a question slot into the option rows to store.
func optionRows(in QuestionInput) []models.Option {
	if in.QuestionType == models.QuestionTypeOpenEnded {
		return []models.Option{{Text: in.Answer, IsCorrect: true}}
	}
	options := make([]models.Option, 0, len(in.Options))
	for j, opt := range in.Options {
		options = append(options, models.Option{Text: opt.Text, IsCorrect: j == in.CorrectIndex})
	}
	return options
}

func reconcileQuestions(tx *gorm.DB, set *models.TriviaSet, inputs []QuestionInput) error {
	existing := make(map[uint]models.Question, len(set.Questions))
	for _, q := range set.Questions {
		existing[q.ID] = q
	}

	seen := make(map[uint]bool, len(inputs))
	for _, in := range inputs {
		if in.ID == 0 {
			if err := createQuestion(tx, set.ID, in); err != nil {
				return err
			}
			continue
		}
		stored, ok := existing[in.ID]
		if !ok {
			// Payload addresses a question that is not part of this set.
			return ErrValidation
		}
		seen[in.ID] = true
		if err := updateQuestion(tx, stored, in); err != nil {
			return err
		}
	}

	for id := range existing {
		if seen[id] {
			continue
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Question{}, id).Error; err != nil {
			return err
		}
	}
	return nil
}

func updateQuestion(tx *gorm.DB, stored models.Question, in QuestionInput) error {
	if stored.QuestionText != in.QuestionText || stored.QuestionType != in.QuestionType {
		updates := map[string]any{
			"question_text": in.QuestionText,
			"question_type": in.QuestionType,
		}
		if err := tx.Model(&models.Question{}).Where("id = ?", stored.ID).Updates(updates).Error; err != nil {
			return err
		}
	}
	return reconcileOptions(tx, stored.ID, in)
}

func reconcileOptions(tx *gorm.DB, questionID uint, in QuestionInput) error {
	var existing []models.Option
	if err := tx.Where("question_id = ?", questionID).Order("id").Find(&existing).Error; err != nil {
		return err
	}

	if in.QuestionType == models.QuestionTypeOpenEnded {
		// One accepted-answer row: rewrite it in place, drop any leftovers
		// from a previous multiple_choice incarnation of this question.
		if len(existing) == 0 {
			return tx.Create(&models.Option{Text: in.Answer, IsCorrect: true, QuestionID: questionID}).Error
		}
		keep := existing[0]
		updates := map[string]any{"text": in.Answer, "is_correct": true}
		if err := tx.Model(&models.Option{}).Where("id = ?", keep.ID).Updates(updates).Error; err != nil {
			return err
		}
		if len(existing) > 1 {
			return tx.Where("question_id = ? AND id <> ?", questionID, keep.ID).Delete(&models.Option{}).Error
		}
		return nil
	}

	byID := make(map[uint]models.Option, len(existing))
	for _, opt := range existing {
		byID[opt.ID] = opt
	}

	seen := make(map[uint]bool, len(in.Options))
	for j, optIn := range in.Options {
		correct := j == in.CorrectIndex
		if optIn.ID == 0 {
			option := models.Option{Text: optIn.Text, IsCorrect: correct, QuestionID: questionID}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
			continue
		}
		stored, ok := byID[optIn.ID]
		if !ok {
			return ErrValidation
		}
		seen[optIn.ID] = true
		if stored.Text != optIn.Text || stored.IsCorrect != correct {
			updates := map[string]any{"text": optIn.Text, "is_correct": correct}
			if err := tx.Model(&models.Option{}).Where("id = ?", optIn.ID).Updates(updates).Error; err != nil {
				return err
			}
		}
	}

	for id := range byID {
		if !seen[id] {
			if err := tx.Delete(&models.Option{}, id).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
