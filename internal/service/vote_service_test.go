package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Problem{},
		&model.Solution{},
		&model.Comment{},
		&model.Vote{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProblemWithSolution(t *testing.T, db *gorm.DB, owner *model.User) *model.Solution {
	t.Helper()
	problem := model.Problem{Description: "Reverse a linked list", UserID: owner.ID}
	require.NoError(t, db.Create(&problem).Error)
	solution := model.Solution{ProblemID: problem.ID, Content: "Iterate and relink.", AIGenerated: true, AnswerType: model.AnswerTypeDirect}
	require.NoError(t, db.Create(&solution).Error)
	return &solution
}

func voteRowCount(t *testing.T, db *gorm.DB, userID, solutionID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Vote{}).Where("user_id = ? AND solution_id = ?", userID, solutionID).Count(&n).Error)
	return n
}

func TestApplyVoteCreatesVote(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(repository.NewVoteRepository(db), db)
	user := seedUser(t, db, "alice")
	solution := seedProblemWithSolution(t, db, user)

	result, err := svc.ApplyVote(user.ID, solution.ID, model.VoteTypeUp)
	require.NoError(t, err)

	assert.Equal(t, "Vote recorded", result.Message)
	assert.Equal(t, int64(1), result.Upvotes)
	assert.Equal(t, int64(0), result.Downvotes)
	assert.Equal(t, int64(1), voteRowCount(t, db, user.ID, solution.ID))
}

func TestApplyVoteSameTypeTwiceRemovesVote(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(repository.NewVoteRepository(db), db)
	user := seedUser(t, db, "alice")
	solution := seedProblemWithSolution(t, db, user)

	_, err := svc.ApplyVote(user.ID, solution.ID, model.VoteTypeUp)
	require.NoError(t, err)
	result, err := svc.ApplyVote(user.ID, solution.ID, model.VoteTypeUp)
	require.NoError(t, err)

	assert.Equal(t, "Vote removed", result.Message)
	assert.Equal(t, int64(0), result.Upvotes)
	assert.Equal(t, int64(0), result.Downvotes)
	assert.Equal(t, int64(0), voteRowCount(t, db, user.ID, solution.ID))
}

func TestApplyVoteDifferentTypeOverwritesInPlace(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(repository.NewVoteRepository(db), db)
	user := seedUser(t, db, "alice")
	solution := seedProblemWithSolution(t, db, user)

	_, err := svc.ApplyVote(user.ID, solution.ID, model.VoteTypeUp)
	require.NoError(t, err)
	result, err := svc.ApplyVote(user.ID, solution.ID, model.VoteTypeDown)
	require.NoError(t, err)

	assert.Equal(t, "Vote recorded", result.Message)
	assert.Equal(t, int64(0), result.Upvotes)
	assert.Equal(t, int64(1), result.Downvotes)

	// Exactly one row for (user, solution), now typed "down".
	var votes []model.Vote
	require.NoError(t, db.Where("user_id = ? AND solution_id = ?", user.ID, solution.ID).Find(&votes).Error)
	require.Len(t, votes, 1)
	assert.Equal(t, model.VoteTypeDown, votes[0].Type)
}

func TestApplyVoteCountsAreScopedPerSolutionAndUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(repository.NewVoteRepository(db), db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	solution := seedProblemWithSolution(t, db, alice)

	_, err := svc.ApplyVote(alice.ID, solution.ID, model.VoteTypeUp)
	require.NoError(t, err)
	result, err := svc.ApplyVote(bob.ID, solution.ID, model.VoteTypeUp)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Upvotes)
	assert.Equal(t, int64(0), result.Downvotes)
}

func TestApplyVoteRejectsInvalidType(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(repository.NewVoteRepository(db), db)

	_, err := svc.ApplyVote(1, 1, "sideways")
	assert.Error(t, err)
}

func TestApplyVoteUnknownSolution(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(repository.NewVoteRepository(db), db)
	user := seedUser(t, db, "alice")

	_, err := svc.ApplyVote(user.ID, 4242, model.VoteTypeUp)
	assert.ErrorContains(t, err, "solution not found")
}

func TestScoreWithNoVotesIsZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(repository.NewVoteRepository(db), db)
	user := seedUser(t, db, "alice")
	solution := seedProblemWithSolution(t, db, user)

	result, err := svc.Score(solution.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Upvotes)
	assert.Equal(t, int64(0), result.Downvotes)
}
