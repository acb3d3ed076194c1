package repository

import (
	"github.com/lshigami/CodeClinic/internal/model"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindBySolutionID(solutionID uint) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindBySolutionID(solutionID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("solution_id = ?", solutionID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
