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

type CommentService interface {
	AddComment(solutionID uint, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

type commentService struct {
	commentRepo  repository.CommentRepository
	solutionRepo repository.SolutionRepository
	userRepo     repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	solutionRepo repository.SolutionRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{commentRepo: commentRepo, solutionRepo: solutionRepo, userRepo: userRepo}
}

func (s *commentService) AddComment(solutionID uint, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.solutionRepo.FindByID(solutionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("solution not found with ID %d", solutionID)
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
	comment := model.Comment{
		SolutionID: solutionID,
		Content:    req.Content,
		AuthorID:   &authorID,
	}
	if err := s.commentRepo.Create(&comment); err != nil {
		log.Error().Err(err).Uint("solutionID", solutionID).Msg("Failed to create comment")
		return nil, err
	}

	var resp dto.CommentResponse
	if err := copier.Copy(&resp, &comment); err != nil {
		return nil, err
	}
	return &resp, nil
}
