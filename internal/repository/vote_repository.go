package repository

import (
	"github.com/lshigami/CodeClinic/internal/model"
	"gorm.io/gorm"
)

type VoteRepository interface {
	// CountsForSolution returns the up and down vote counts for a solution.
	// A solution with no votes of a type yields 0.
	CountsForSolution(solutionID uint) (upvotes int64, downvotes int64, err error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) CountsForSolution(solutionID uint) (int64, int64, error) {
	var upvotes, downvotes int64
	if err := r.db.Model(&model.Vote{}).
		Where("solution_id = ? AND type = ?", solutionID, model.VoteTypeUp).
		Count(&upvotes).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&model.Vote{}).
		Where("solution_id = ? AND type = ?", solutionID, model.VoteTypeDown).
		Count(&downvotes).Error; err != nil {
		return 0, 0, err
	}
	return upvotes, downvotes, nil
}
