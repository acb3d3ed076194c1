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

type UserService interface {
	Register(req dto.RegisterUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	_, err := s.userRepo.FindByUsername(req.Username)
	if err == nil {
		return nil, fmt.Errorf("username %q already exists", req.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := model.User{Username: req.Username, Email: req.Email}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, err
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, err
	}
	return &resp, nil
}
