package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/CodeClinic/internal/model"
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

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{Username: username}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createProblem(t *testing.T, db *gorm.DB, userID uint, topic *string) *model.Problem {
	t.Helper()
	problem := model.Problem{Description: "problem by " + fmt.Sprint(userID), UserID: userID, Topic: topic}
	require.NoError(t, db.Create(&problem).Error)
	return &problem
}

func createSolution(t *testing.T, db *gorm.DB, problemID uint, authorID *uint, aiGenerated bool, answerType string) *model.Solution {
	t.Helper()
	solution := model.Solution{
		ProblemID:   problemID,
		Content:     "content",
		AuthorID:    authorID,
		AIGenerated: aiGenerated,
		AnswerType:  answerType,
	}
	require.NoError(t, db.Create(&solution).Error)
	return &solution
}

func castVote(t *testing.T, db *gorm.DB, userID, solutionID uint, voteType string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Vote{UserID: userID, SolutionID: solutionID, Type: voteType}).Error)
}

func strPtr(s string) *string { return &s }

func TestReportQueriesOnEmptyStore(t *testing.T) {
	repo := NewReportRepository(newTestDB(t))

	total, err := repo.TotalProblems()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	topics, err := repo.ProblemsPerTopic()
	require.NoError(t, err)
	assert.Empty(t, topics)

	daily, err := repo.ProblemsPerDay()
	require.NoError(t, err)
	assert.Empty(t, daily)

	users, err := repo.TopActiveUsers(10)
	require.NoError(t, err)
	assert.Empty(t, users)

	scores, err := repo.TopSolutionsByClass(true, 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestTopActiveUsersScoring(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	busy := createUser(t, db, "busy")
	quiet := createUser(t, db, "quiet")

	problem := createProblem(t, db, busy.ID, nil)
	aiSolution := createSolution(t, db, problem.ID, nil, true, model.AnswerTypeDirect)

	// busy: three human solutions plus two comments, score 5.
	for i := 0; i < 3; i++ {
		createSolution(t, db, problem.ID, &busy.ID, false, model.AnswerTypeDirect)
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&model.Comment{SolutionID: aiSolution.ID, Content: "note", AuthorID: &busy.ID}).Error)
	}
	// quiet: one comment, score 1.
	require.NoError(t, db.Create(&model.Comment{SolutionID: aiSolution.ID, Content: "thanks", AuthorID: &quiet.ID}).Error)

	rows, err := repo.TopActiveUsers(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "busy", rows[0].Username)
	assert.Equal(t, int64(3), rows[0].SolutionsPosted)
	assert.Equal(t, int64(2), rows[0].CommentsPosted)
	assert.Equal(t, int64(5), rows[0].ActivityScore)
	assert.Equal(t, "quiet", rows[1].Username)
	assert.Equal(t, int64(1), rows[1].ActivityScore)
}

func TestTopActiveUsersIgnoresAISolutions(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	user := createUser(t, db, "alice")
	problem := createProblem(t, db, user.ID, nil)

	// An AI solution carrying an author must not count as posted activity.
	createSolution(t, db, problem.ID, &user.ID, true, model.AnswerTypeDirect)

	rows, err := repo.TopActiveUsers(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(0), rows[0].SolutionsPosted)
	assert.Equal(t, int64(0), rows[0].ActivityScore)
}

func TestProblemsPerTopicIncludesNullBucket(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	user := createUser(t, db, "alice")

	createProblem(t, db, user.ID, strPtr("Arrays"))
	createProblem(t, db, user.ID, strPtr("Arrays"))
	createProblem(t, db, user.ID, nil)

	rows, err := repo.ProblemsPerTopic()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Topic)
	assert.Equal(t, "Arrays", *rows[0].Topic)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Nil(t, rows[1].Topic)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestProblemsPerDayGroupsByCalendarDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	user := createUser(t, db, "alice")

	day1 := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 23, 59, 59, 0, time.UTC)
	for _, ts := range []time.Time{day1, day1.Add(5 * time.Hour), day2} {
		problem := model.Problem{Description: "p", UserID: user.ID, CreatedAt: ts}
		require.NoError(t, db.Create(&problem).Error)
	}

	rows, err := repo.ProblemsPerDay()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-01", rows[0].Date)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, "2026-08-02", rows[1].Date)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestVoteCountByClassFiltersInsideJoin(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	problem := createProblem(t, db, alice.ID, nil)

	aiSolution := createSolution(t, db, problem.ID, nil, true, model.AnswerTypeDirect)
	humanSolution := createSolution(t, db, problem.ID, &bob.ID, false, model.AnswerTypeDirect)

	castVote(t, db, alice.ID, aiSolution.ID, model.VoteTypeUp)
	castVote(t, db, bob.ID, aiSolution.ID, model.VoteTypeDown)
	castVote(t, db, alice.ID, humanSolution.ID, model.VoteTypeUp)

	aiVotes, err := repo.VoteCountByClass(true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), aiVotes)

	humanVotes, err := repo.VoteCountByClass(false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), humanVotes)
}

func TestAnswerTypeBreakdownSplitsByClass(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	user := createUser(t, db, "alice")
	problem := createProblem(t, db, user.ID, nil)

	createSolution(t, db, problem.ID, nil, true, model.AnswerTypeDirect)
	createSolution(t, db, problem.ID, nil, true, model.AnswerTypeDirect)
	createSolution(t, db, problem.ID, nil, true, model.AnswerTypeExample)
	createSolution(t, db, problem.ID, &user.ID, false, model.AnswerTypeOpinion)

	aiRows, err := repo.AnswerTypeBreakdown(true)
	require.NoError(t, err)
	require.Len(t, aiRows, 2)
	assert.Equal(t, model.AnswerTypeDirect, aiRows[0].AnswerType)
	assert.Equal(t, int64(2), aiRows[0].Count)

	humanRows, err := repo.AnswerTypeBreakdown(false)
	require.NoError(t, err)
	require.Len(t, humanRows, 1)
	assert.Equal(t, model.AnswerTypeOpinion, humanRows[0].AnswerType)
}

func TestAITopicBreakdownFollowsProblemTopics(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	user := createUser(t, db, "alice")

	arrays := createProblem(t, db, user.ID, strPtr("Arrays"))
	graphs := createProblem(t, db, user.ID, strPtr("Graphs"))
	createSolution(t, db, arrays.ID, nil, true, model.AnswerTypeDirect)
	createSolution(t, db, arrays.ID, nil, true, model.AnswerTypeDirect)
	createSolution(t, db, graphs.ID, nil, true, model.AnswerTypeDirect)
	// Human solutions never appear in the AI topic breakdown.
	createSolution(t, db, graphs.ID, &user.ID, false, model.AnswerTypeDirect)

	rows, err := repo.AITopicBreakdown()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Topic)
	assert.Equal(t, "Arrays", *rows[0].Topic)
	assert.Equal(t, int64(2), rows[0].Count)
	require.NotNil(t, rows[1].Topic)
	assert.Equal(t, "Graphs", *rows[1].Topic)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestTopSolutionsByClassScoreCountsAllVotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	problem := createProblem(t, db, alice.ID, nil)

	controversial := createSolution(t, db, problem.ID, nil, true, model.AnswerTypeDirect)
	liked := createSolution(t, db, problem.ID, nil, true, model.AnswerTypeDirect)

	castVote(t, db, alice.ID, controversial.ID, model.VoteTypeUp)
	castVote(t, db, bob.ID, controversial.ID, model.VoteTypeDown)
	castVote(t, db, carol.ID, controversial.ID, model.VoteTypeDown)
	castVote(t, db, alice.ID, liked.ID, model.VoteTypeUp)
	castVote(t, db, bob.ID, liked.ID, model.VoteTypeUp)

	rows, err := repo.TopSolutionsByClass(true, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Total engagement wins: 3 votes beats 2 even with a worse net score.
	assert.Equal(t, controversial.ID, rows[0].SolutionID)
	assert.Equal(t, int64(1), rows[0].Upvotes)
	assert.Equal(t, int64(2), rows[0].Downvotes)
	assert.Equal(t, int64(3), rows[0].Score)
	assert.Equal(t, liked.ID, rows[1].SolutionID)
	assert.Equal(t, int64(2), rows[1].Score)
}

func TestBestUsersIgnoresVotesOnAISolutions(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	problem := createProblem(t, db, alice.ID, nil)

	human := createSolution(t, db, problem.ID, &alice.ID, false, model.AnswerTypeDirect)
	// AI solution attributed to alice; its upvotes must not add reputation.
	ai := createSolution(t, db, problem.ID, &alice.ID, true, model.AnswerTypeDirect)

	castVote(t, db, bob.ID, human.ID, model.VoteTypeUp)
	castVote(t, db, alice.ID, ai.ID, model.VoteTypeUp)
	castVote(t, db, bob.ID, ai.ID, model.VoteTypeUp)
	// Downvotes never add to reputation either.
	castVote(t, db, alice.ID, human.ID, model.VoteTypeDown)

	rows, err := repo.BestUsers(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, int64(1), rows[0].TotalUpvotes)
	assert.Equal(t, int64(1), rows[0].TotalSolutions)
	assert.Equal(t, int64(0), rows[1].TotalUpvotes)
}

func TestMostActiveProblemsCountsHumanSolutionsButAllComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	busy := createProblem(t, db, alice.ID, nil)
	idle := createProblem(t, db, bob.ID, nil)

	aiSolution := createSolution(t, db, busy.ID, nil, true, model.AnswerTypeDirect)
	createSolution(t, db, busy.ID, &bob.ID, false, model.AnswerTypeDirect)
	createSolution(t, db, idle.ID, nil, true, model.AnswerTypeDirect)

	// Comments on the AI solution count toward activity even though the
	// solution itself does not.
	require.NoError(t, db.Create(&model.Comment{SolutionID: aiSolution.ID, Content: "nice", AuthorID: &bob.ID}).Error)
	require.NoError(t, db.Create(&model.Comment{SolutionID: aiSolution.ID, Content: "agreed", AuthorID: &alice.ID}).Error)

	rows, err := repo.MostActiveProblems(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, busy.ID, rows[0].ProblemID)
	assert.Equal(t, int64(1), rows[0].SolutionCount)
	assert.Equal(t, int64(2), rows[0].CommentCount)
	assert.Equal(t, int64(3), rows[0].ActivityScore)
	assert.Equal(t, idle.ID, rows[1].ProblemID)
	assert.Equal(t, int64(0), rows[1].ActivityScore)
}
