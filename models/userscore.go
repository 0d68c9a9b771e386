package models

import (
	"time"
)

// UserScore holds the latest score for a (user, trivia set) pair.
// Resubmissions overwrite the row rather than appending history.
type UserScore struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:idx_user_set"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	TriviaSetID uint      `gorm:"not null;index;uniqueIndex:idx_user_set"`
	TriviaSet   TriviaSet `gorm:"foreignKey:TriviaSetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Score       int       `gorm:"not null"`
	PlayedAt    time.Time `gorm:"autoUpdateTime"`
}
