package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FallbackSolutionContent is stored when the AI collaborator is disabled or
// its generate call fails. Problem creation never fails on AI errors.
const FallbackSolutionContent = "AI service unavailable."

type ProblemService interface {
	// SubmitProblem creates the problem and, synchronously, its one
	// AI-generated solution. AI failures degrade the topic and solution
	// content but never abort the submission.
	SubmitProblem(ctx context.Context, req dto.SubmitProblemRequest) (*dto.ProblemDetailResponse, error)
	GetAllProblems() ([]dto.ProblemSummaryResponse, error)
	GetProblemDetail(id uint) (*dto.ProblemDetailResponse, error)
}

type problemService struct {
	problemRepo  repository.ProblemRepository
	solutionRepo repository.SolutionRepository
	userRepo     repository.UserRepository
	gemini       GeminiLLMService
	db           *gorm.DB
}

func NewProblemService(
	problemRepo repository.ProblemRepository,
	solutionRepo repository.SolutionRepository,
	userRepo repository.UserRepository,
	gemini GeminiLLMService,
	db *gorm.DB,
) ProblemService {
	return &problemService{
		problemRepo:  problemRepo,
		solutionRepo: solutionRepo,
		userRepo:     userRepo,
		gemini:       gemini,
		db:           db,
	}
}

func (s *problemService) SubmitProblem(ctx context.Context, req dto.SubmitProblemRequest) (*dto.ProblemDetailResponse, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found with ID %d", req.UserID)
		}
		return nil, err
	}

	topic, content := s.runAICollaborator(ctx, req.Description)

	problem := model.Problem{
		Description: req.Description,
		UserID:      req.UserID,
		Topic:       &topic,
	}
	aiSolution := model.Solution{
		Content:     content,
		AIGenerated: true,
		AnswerType:  InferAnswerType(req.Description),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&problem).Error; err != nil {
			return err
		}
		aiSolution.ProblemID = problem.ID
		return tx.Create(&aiSolution).Error
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create problem with AI solution")
		return nil, fmt.Errorf("database error creating problem: %w", err)
	}

	log.Info().Uint("problemID", problem.ID).Str("topic", topic).Msg("Problem submitted")
	return s.GetProblemDetail(problem.ID)
}

// runAICollaborator resolves the topic and AI solution content for a new
// problem. A failed generate call records the topic as "Unknown"; a failed
// classify call alone records "Uncategorized" and keeps the generated content.
func (s *problemService) runAICollaborator(ctx context.Context, description string) (topic, content string) {
	topic = model.TopicUncategorized
	content = FallbackSolutionContent

	if !s.gemini.Enabled() {
		return topic, content
	}

	classified, classifyErr := s.gemini.ClassifyProblem(ctx, description)
	generated, generateErr := s.gemini.GenerateSolution(ctx, description)

	if generateErr != nil {
		log.Warn().Err(generateErr).Msg("AI solution generation failed, using fallback content")
		return model.TopicUnknown, FallbackSolutionContent
	}
	content = generated
	if classifyErr != nil {
		log.Warn().Err(classifyErr).Msg("AI topic classification failed, problem left uncategorized")
		return model.TopicUncategorized, content
	}
	return classified, content
}

func (s *problemService) GetAllProblems() ([]dto.ProblemSummaryResponse, error) {
	problems, err := s.problemRepo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProblemSummaryResponse, 0, len(problems))
	if err := copier.Copy(&resp, &problems); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *problemService) GetProblemDetail(id uint) (*dto.ProblemDetailResponse, error) {
	problem, err := s.problemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("problem not found with ID %d", id)
		}
		return nil, err
	}

	solutions, err := s.solutionRepo.FindByProblemIDWithVotes(id)
	if err != nil {
		return nil, err
	}

	var resp dto.ProblemDetailResponse
	if err := copier.Copy(&resp, problem); err != nil {
		return nil, err
	}
	resp.Solutions = make([]dto.SolutionResponse, 0, len(solutions))
	for _, sol := range solutions {
		var sr dto.SolutionResponse
		if err := copier.Copy(&sr, &sol.Solution); err != nil {
			return nil, err
		}
		sr.UpvotesCount = sol.UpvotesCount
		sr.DownvotesCount = sol.DownvotesCount
		resp.Solutions = append(resp.Solutions, sr)
	}
	RankSolutions(resp.Solutions)
	return &resp, nil
}
