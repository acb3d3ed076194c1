package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SolutionService interface {
	CreateSolution(problemID uint, req dto.CreateSolutionRequest) (*dto.SolutionResponse, error)
}

type solutionService struct {
	solutionRepo repository.SolutionRepository
	problemRepo  repository.ProblemRepository
	userRepo     repository.UserRepository
}

func NewSolutionService(
	solutionRepo repository.SolutionRepository,
	problemRepo repository.ProblemRepository,
	userRepo repository.UserRepository,
) SolutionService {
	return &solutionService{solutionRepo: solutionRepo, problemRepo: problemRepo, userRepo: userRepo}
}

func (s *solutionService) CreateSolution(problemID uint, req dto.CreateSolutionRequest) (*dto.SolutionResponse, error) {
	if _, err := s.problemRepo.FindByID(problemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("problem not found with ID %d", problemID)
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found with ID %d", req.UserID)
		}
		return nil, err
	}

	authorID := req.UserID
	solution := model.Solution{
		ProblemID:   problemID,
		Content:     req.Content,
		AuthorID:    &authorID,
		AIGenerated: false,
		AnswerType:  InferAnswerType(req.Content),
	}
	if err := s.solutionRepo.Create(&solution); err != nil {
		log.Error().Err(err).Uint("problemID", problemID).Msg("Failed to create solution")
		return nil, err
	}

	var resp dto.SolutionResponse
	if err := copier.Copy(&resp, &solution); err != nil {
		return nil, err
	}
	return &resp, nil
}
