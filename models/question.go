package models

import "gorm.io/gorm"

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeOpenEnded      = "open_ended"
)

// Question belongs to exactly one trivia set. An open_ended question carries a
// single Option holding the accepted answer; a multiple_choice question carries
// one Option per presented choice with exactly one flagged correct.
type Question struct {
	gorm.Model
	QuestionText string `gorm:"not null;size:255"`
	QuestionType string `gorm:"not null;size:20"`

	TriviaSetID uint      `gorm:"not null;index"`
	TriviaSet   TriviaSet `gorm:"foreignKey:TriviaSetID" json:"-"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}
