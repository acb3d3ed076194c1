package model

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SolutionID uint           `json:"solution_id" gorm:"not null;index"`
	Solution   Solution       `json:"solution,omitempty" gorm:"foreignKey:SolutionID"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	AuthorID   *uint          `json:"author_id,omitempty" gorm:"index"`
	Author     *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
