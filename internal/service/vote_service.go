package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	voteRecordedMessage = "Vote recorded"
	voteRemovedMessage  = "Vote removed"
)

type VoteService interface {
	// ApplyVote applies toggle semantics for (user, solution): no existing
	// vote creates one, a same-typed vote removes it, a differently-typed
	// vote overwrites its type in place. Returns fresh counts after mutation.
	ApplyVote(userID, solutionID uint, voteType string) (*dto.VoteResultResponse, error)
	// Score returns the current up/down vote counts for a solution.
	Score(solutionID uint) (*dto.VoteResultResponse, error)
}

type voteService struct {
	voteRepo repository.VoteRepository
	db       *gorm.DB
}

func NewVoteService(voteRepo repository.VoteRepository, db *gorm.DB) VoteService {
	return &voteService{voteRepo: voteRepo, db: db}
}

func (s *voteService) ApplyVote(userID, solutionID uint, voteType string) (*dto.VoteResultResponse, error) {
	if !model.IsValidVoteType(voteType) {
		return nil, fmt.Errorf("invalid vote type %q", voteType)
	}

	var result dto.VoteResultResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the solution row so concurrent toggles from the same user
		// serialize instead of racing into a duplicate vote insert. The
		// (user_id, solution_id) unique index is the schema-level backstop.
		// SQLite has no row locks; its single-writer transactions already
		// serialize the toggle.
		solutionQuery := tx.Model(&model.Solution{})
		if tx.Dialector.Name() != "sqlite" {
			solutionQuery = solutionQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var solution model.Solution
		if err := solutionQuery.First(&solution, solutionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("solution not found with ID %d", solutionID)
			}
			return err
		}

		var vote model.Vote
		err := tx.Where("user_id = ? AND solution_id = ?", userID, solutionID).First(&vote).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote = model.Vote{UserID: userID, SolutionID: solutionID, Type: voteType}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			result.Message = voteRecordedMessage
		case err != nil:
			return err
		case vote.Type == voteType:
			if err := tx.Delete(&vote).Error; err != nil {
				return err
			}
			result.Message = voteRemovedMessage
		default:
			if err := tx.Model(&vote).Update("type", voteType).Error; err != nil {
				return err
			}
			result.Message = voteRecordedMessage
		}

		if err := tx.Model(&model.Vote{}).
			Where("solution_id = ? AND type = ?", solutionID, model.VoteTypeUp).
			Count(&result.Upvotes).Error; err != nil {
			return err
		}
		return tx.Model(&model.Vote{}).
			Where("solution_id = ? AND type = ?", solutionID, model.VoteTypeDown).
			Count(&result.Downvotes).Error
	})
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Uint("solutionID", solutionID).Str("voteType", voteType).Msg("Vote toggle failed")
		return nil, err
	}
	return &result, nil
}

func (s *voteService) Score(solutionID uint) (*dto.VoteResultResponse, error) {
	upvotes, downvotes, err := s.voteRepo.CountsForSolution(solutionID)
	if err != nil {
		return nil, err
	}
	return &dto.VoteResultResponse{Upvotes: upvotes, Downvotes: downvotes}, nil
}
