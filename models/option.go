package models

import "gorm.io/gorm"

// Option is one selectable (or accepted) answer belonging to a question.
type Option struct {
	gorm.Model
	Text      string `gorm:"not null;size:255"`
	IsCorrect bool   `gorm:"not null;default:false"`

	QuestionID uint     `gorm:"not null;index"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"-"`
}
