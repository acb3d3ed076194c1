package repository

import (
	"github.com/lshigami/CodeClinic/internal/model"
	"gorm.io/gorm"
)

type ProblemRepository interface {
	Create(problem *model.Problem) error
	FindByID(id uint) (*model.Problem, error)
	FindAll() ([]model.Problem, error)
}

type problemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) Create(problem *model.Problem) error {
	return r.db.Create(problem).Error
}

func (r *problemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	if err := r.db.First(&problem, id).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

// FindAll returns the feed ordering: newest problems first.
func (r *problemRepository) FindAll() ([]model.Problem, error) {
	var problems []model.Problem
	if err := r.db.Order("created_at DESC").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}
