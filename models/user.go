package models

import "gorm.io/gorm"

// User represents a registered account
type User struct {
	gorm.Model
	Email        string `gorm:"unique;not null;size:120"`
	Username     string `gorm:"unique;not null;size:80"`
	PasswordHash string `gorm:"not null;size:120" json:"-"`
	IsActive     bool   `gorm:"default:true"`

	TriviaSets []TriviaSet `gorm:"foreignKey:UserID"`
	Scores     []UserScore `gorm:"foreignKey:UserID"`
}
