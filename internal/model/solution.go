package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer types order lexicographically: direct < example < explanation < opinion.
// The solution ranking relies on that ordering for its secondary key.
const (
	AnswerTypeDirect      = "direct"
	AnswerTypeExample     = "example"
	AnswerTypeExplanation = "explanation"
	AnswerTypeOpinion     = "opinion"
)

type Solution struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ProblemID   uint           `json:"problem_id" gorm:"not null;index"`
	Problem     Problem        `json:"problem,omitempty" gorm:"foreignKey:ProblemID"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	AuthorID    *uint          `json:"author_id,omitempty" gorm:"index"` // nil for AI-generated solutions
	Author      *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	AIGenerated bool           `json:"ai_generated" gorm:"not null;default:false;index"`
	AnswerType  string         `json:"answer_type" gorm:"size:20;not null;default:'direct'"`
	Comments    []Comment      `json:"comments,omitempty" gorm:"foreignKey:SolutionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Votes       []Vote         `json:"votes,omitempty" gorm:"foreignKey:SolutionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
