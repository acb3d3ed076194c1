package model

import (
	"time"

	"gorm.io/gorm"
)

// Topic values written by the submission path when the AI collaborator is
// unavailable or fails. Successful classification writes one of the fixed
// topics from the classify prompt.
const (
	TopicUncategorized = "Uncategorized"
	TopicUnknown       = "Unknown"
)

type Problem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Description string         `json:"description" gorm:"type:text;not null"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Topic       *string        `json:"topic,omitempty" gorm:"size:100;index"`
	Solutions   []Solution     `json:"solutions,omitempty" gorm:"foreignKey:ProblemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
