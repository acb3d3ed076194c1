package service

import (
	"testing"

	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSolutionService(db *gorm.DB) SolutionService {
	return NewSolutionService(
		repository.NewSolutionRepository(db),
		repository.NewProblemRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestCreateSolutionInfersAnswerTypeFromContent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	problem := model.Problem{Description: "Reverse a linked list", UserID: user.ID}
	require.NoError(t, db.Create(&problem).Error)

	resp, err := newSolutionService(db).CreateSolution(problem.ID, dto.CreateSolutionRequest{
		UserID:  user.ID,
		Content: "Let me explain the two pointer approach step by step.",
	})
	require.NoError(t, err)

	assert.Equal(t, model.AnswerTypeExplanation, resp.AnswerType)
	assert.False(t, resp.AIGenerated)
	require.NotNil(t, resp.AuthorID)
	assert.Equal(t, user.ID, *resp.AuthorID)
}

func TestCreateSolutionUnknownProblem(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")

	_, err := newSolutionService(db).CreateSolution(777, dto.CreateSolutionRequest{UserID: user.ID, Content: "x"})
	assert.ErrorContains(t, err, "problem not found")
}

func TestCreateSolutionUnknownUser(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	problem := model.Problem{Description: "p", UserID: user.ID}
	require.NoError(t, db.Create(&problem).Error)

	_, err := newSolutionService(db).CreateSolution(problem.ID, dto.CreateSolutionRequest{UserID: 999, Content: "x"})
	assert.ErrorContains(t, err, "user not found")
}

func TestAddCommentToSolution(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	solution := seedProblemWithSolution(t, db, user)
	svc := NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewSolutionRepository(db),
		repository.NewUserRepository(db),
	)

	resp, err := svc.AddComment(solution.ID, dto.CreateCommentRequest{UserID: user.ID, Content: "Nice approach"})
	require.NoError(t, err)
	assert.Equal(t, solution.ID, resp.SolutionID)
	assert.Equal(t, "Nice approach", resp.Content)

	_, err = svc.AddComment(4242, dto.CreateCommentRequest{UserID: user.ID, Content: "x"})
	assert.ErrorContains(t, err, "solution not found")
}
