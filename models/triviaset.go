package models

import (
	"gorm.io/gorm"
)

// TriviaSet represents a named collection of questions owned by one user.
// PublicID is the identifier used in URLs; the numeric primary key stays internal.
type TriviaSet struct {
	gorm.Model
	SetTitle   string `gorm:"not null;size:100"`
	Category   string `gorm:"not null;size:50"`
	Difficulty string `gorm:"not null;size:50"`
	UserID     uint   `gorm:"not null"`
	PublicID   string `gorm:"size:50;uniqueIndex"`
	User       User   `gorm:"foreignKey:UserID" json:"-"`

	Questions []Question `gorm:"foreignKey:TriviaSetID;constraint:OnDelete:CASCADE"`
}
