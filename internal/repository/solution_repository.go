package repository

import (
	"github.com/lshigami/CodeClinic/internal/model"
	"gorm.io/gorm"
)

// SolutionWithVotes is a solution row annotated with its vote counts, computed
// by correlated subqueries so a single statement covers the whole solution list.
type SolutionWithVotes struct {
	model.Solution
	UpvotesCount   int64
	DownvotesCount int64
}

type SolutionRepository interface {
	Create(solution *model.Solution) error
	FindByID(id uint) (*model.Solution, error)
	FindByProblemIDWithVotes(problemID uint) ([]SolutionWithVotes, error)
}

type solutionRepository struct {
	db *gorm.DB
}

func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &solutionRepository{db: db}
}

func (r *solutionRepository) Create(solution *model.Solution) error {
	return r.db.Create(solution).Error
}

func (r *solutionRepository) FindByID(id uint) (*model.Solution, error) {
	var solution model.Solution
	if err := r.db.First(&solution, id).Error; err != nil {
		return nil, err
	}
	return &solution, nil
}

// FindByProblemIDWithVotes loads a problem's solutions with their vote counts
// and comments. Ordering for display is done by the ranking service, not here.
func (r *solutionRepository) FindByProblemIDWithVotes(problemID uint) ([]SolutionWithVotes, error) {
	var results []SolutionWithVotes
	err := r.db.Model(&model.Solution{}).
		Select(`solutions.*,
			(SELECT COUNT(*) FROM votes WHERE votes.solution_id = solutions.id AND votes.type = 'up') AS upvotes_count,
			(SELECT COUNT(*) FROM votes WHERE votes.solution_id = solutions.id AND votes.type = 'down') AS downvotes_count`).
		Where("solutions.problem_id = ?", problemID).
		Order("solutions.created_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return results, nil
	}

	// Scan cannot preload associations, so comments are attached in a second query.
	ids := make([]uint, 0, len(results))
	for _, s := range results {
		ids = append(ids, s.ID)
	}
	var comments []model.Comment
	if err := r.db.Where("solution_id IN ?", ids).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	bySolution := make(map[uint][]model.Comment, len(results))
	for _, c := range comments {
		bySolution[c.SolutionID] = append(bySolution[c.SolutionID], c)
	}
	for i := range results {
		results[i].Comments = bySolution[results[i].ID]
	}
	return results, nil
}
