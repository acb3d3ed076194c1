package model

import (
	"time"
)

const (
	VoteTypeUp   = "up"
	VoteTypeDown = "down"
)

// Vote carries no soft-delete column: toggling a vote off must free the
// (user_id, solution_id) unique index slot so the user can vote again.
type Vote struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SolutionID uint      `json:"solution_id" gorm:"not null;uniqueIndex:idx_votes_user_solution"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_user_solution"`
	Type       string    `json:"type" gorm:"size:10;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsValidVoteType reports whether t is one of the accepted vote types.
func IsValidVoteType(t string) bool {
	return t == VoteTypeUp || t == VoteTypeDown
}
