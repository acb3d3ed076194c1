package repository

import (
	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/model"
	"gorm.io/gorm"
)

// ReportRepository holds every dashboard metric as an independent read-only
// query. All queries tolerate an empty database and return zero values or
// empty slices. Metrics that split AI vs human solutions apply that filter
// inside the aggregate itself, never after it.
type ReportRepository interface {
	TotalProblems() (int64, error)
	TotalSolutions() (int64, error)
	TotalComments() (int64, error)
	TotalVotes() (int64, error)
	ProblemsPerTopic() ([]dto.TopicCount, error)
	ProblemsPerDay() ([]dto.DailyCount, error)
	TopActiveUsers(limit int) ([]dto.UserActivity, error)
	SolutionCountByClass(aiGenerated bool) (int64, error)
	VoteCountByClass(aiGenerated bool) (int64, error)
	AnswerTypeBreakdown(aiGenerated bool) ([]dto.AnswerTypeCount, error)
	AITopicBreakdown() ([]dto.TopicCount, error)
	TopSolutionsByClass(aiGenerated bool, limit int) ([]dto.SolutionScore, error)
	BestUsers(limit int) ([]dto.UserReputation, error)
	MostActiveProblems(limit int) ([]dto.ProblemActivity, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) TotalProblems() (int64, error) {
	var n int64
	err := r.db.Model(&model.Problem{}).Count(&n).Error
	return n, err
}

func (r *reportRepository) TotalSolutions() (int64, error) {
	var n int64
	err := r.db.Model(&model.Solution{}).Count(&n).Error
	return n, err
}

func (r *reportRepository) TotalComments() (int64, error) {
	var n int64
	err := r.db.Model(&model.Comment{}).Count(&n).Error
	return n, err
}

func (r *reportRepository) TotalVotes() (int64, error) {
	var n int64
	err := r.db.Model(&model.Vote{}).Count(&n).Error
	return n, err
}

// ProblemsPerTopic groups by topic, NULL topics forming their own bucket.
func (r *reportRepository) ProblemsPerTopic() ([]dto.TopicCount, error) {
	var rows []dto.TopicCount
	err := r.db.Model(&model.Problem{}).
		Select("topic, COUNT(*) AS count").
		Group("topic").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// dateOfCreatedAt truncates created_at to its calendar date as a YYYY-MM-DD
// string. Postgres needs to_char so the value scans as text.
func (r *reportRepository) dateOfCreatedAt() string {
	if r.db.Dialector.Name() == "postgres" {
		return "to_char(created_at, 'YYYY-MM-DD')"
	}
	return "DATE(created_at)"
}

func (r *reportRepository) ProblemsPerDay() ([]dto.DailyCount, error) {
	var rows []dto.DailyCount
	expr := r.dateOfCreatedAt()
	err := r.db.Model(&model.Problem{}).
		Select(expr + " AS date, COUNT(*) AS count").
		Group(expr).
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

// TopActiveUsers scores each user by human-authored solutions plus comments.
func (r *reportRepository) TopActiveUsers(limit int) ([]dto.UserActivity, error) {
	var rows []dto.UserActivity
	err := r.db.Model(&model.User{}).
		Select(`users.id AS user_id, users.username,
			(SELECT COUNT(*) FROM solutions WHERE solutions.author_id = users.id AND solutions.ai_generated = FALSE AND solutions.deleted_at IS NULL) AS solutions_posted,
			(SELECT COUNT(*) FROM comments WHERE comments.author_id = users.id AND comments.deleted_at IS NULL) AS comments_posted,
			(SELECT COUNT(*) FROM solutions WHERE solutions.author_id = users.id AND solutions.ai_generated = FALSE AND solutions.deleted_at IS NULL)
			+ (SELECT COUNT(*) FROM comments WHERE comments.author_id = users.id AND comments.deleted_at IS NULL) AS activity_score`).
		Order("activity_score DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) SolutionCountByClass(aiGenerated bool) (int64, error) {
	var n int64
	err := r.db.Model(&model.Solution{}).
		Where("ai_generated = ?", aiGenerated).
		Count(&n).Error
	return n, err
}

// VoteCountByClass counts votes cast on solutions of one class. The class
// filter is applied in the join, before counting.
func (r *reportRepository) VoteCountByClass(aiGenerated bool) (int64, error) {
	var n int64
	err := r.db.Model(&model.Vote{}).
		Joins("JOIN solutions ON solutions.id = votes.solution_id").
		Where("solutions.ai_generated = ? AND solutions.deleted_at IS NULL", aiGenerated).
		Count(&n).Error
	return n, err
}

func (r *reportRepository) AnswerTypeBreakdown(aiGenerated bool) ([]dto.AnswerTypeCount, error) {
	var rows []dto.AnswerTypeCount
	err := r.db.Model(&model.Solution{}).
		Select("answer_type, COUNT(*) AS count").
		Where("ai_generated = ?", aiGenerated).
		Group("answer_type").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// AITopicBreakdown groups AI solutions by the topic of their problem.
func (r *reportRepository) AITopicBreakdown() ([]dto.TopicCount, error) {
	var rows []dto.TopicCount
	err := r.db.Model(&model.Solution{}).
		Select("problems.topic AS topic, COUNT(*) AS count").
		Joins("JOIN problems ON problems.id = solutions.problem_id").
		Where("solutions.ai_generated = ? AND problems.deleted_at IS NULL", true).
		Group("problems.topic").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// TopSolutionsByClass ranks solutions of one class by total vote count
// (upvotes plus downvotes).
func (r *reportRepository) TopSolutionsByClass(aiGenerated bool, limit int) ([]dto.SolutionScore, error) {
	var rows []dto.SolutionScore
	err := r.db.Model(&model.Solution{}).
		Select(`solutions.id AS solution_id, solutions.problem_id, solutions.ai_generated, solutions.answer_type,
			(SELECT COUNT(*) FROM votes WHERE votes.solution_id = solutions.id AND votes.type = 'up') AS upvotes,
			(SELECT COUNT(*) FROM votes WHERE votes.solution_id = solutions.id AND votes.type = 'down') AS downvotes,
			(SELECT COUNT(*) FROM votes WHERE votes.solution_id = solutions.id) AS score`).
		Where("solutions.ai_generated = ?", aiGenerated).
		Order("score DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// BestUsers only traverses votes on human-authored solutions; upvotes received
// on AI solutions never count toward a user's total.
func (r *reportRepository) BestUsers(limit int) ([]dto.UserReputation, error) {
	var rows []dto.UserReputation
	err := r.db.Model(&model.User{}).
		Select(`users.id AS user_id, users.username,
			(SELECT COUNT(*) FROM votes
				JOIN solutions ON solutions.id = votes.solution_id
				WHERE solutions.author_id = users.id AND solutions.ai_generated = FALSE
				AND solutions.deleted_at IS NULL AND votes.type = 'up') AS total_upvotes,
			(SELECT COUNT(*) FROM solutions WHERE solutions.author_id = users.id AND solutions.ai_generated = FALSE AND solutions.deleted_at IS NULL) AS total_solutions`).
		Order("total_upvotes DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// MostActiveProblems: solution_count is human-only while comment_count spans
// comments on all of the problem's solutions, AI ones included.
func (r *reportRepository) MostActiveProblems(limit int) ([]dto.ProblemActivity, error) {
	var rows []dto.ProblemActivity
	err := r.db.Model(&model.Problem{}).
		Select(`problems.id AS problem_id, problems.description,
			(SELECT COUNT(*) FROM solutions WHERE solutions.problem_id = problems.id AND solutions.ai_generated = FALSE AND solutions.deleted_at IS NULL) AS solution_count,
			(SELECT COUNT(*) FROM comments
				JOIN solutions ON solutions.id = comments.solution_id
				WHERE solutions.problem_id = problems.id AND comments.deleted_at IS NULL AND solutions.deleted_at IS NULL) AS comment_count,
			(SELECT COUNT(*) FROM solutions WHERE solutions.problem_id = problems.id AND solutions.ai_generated = FALSE AND solutions.deleted_at IS NULL)
			+ (SELECT COUNT(*) FROM comments
				JOIN solutions ON solutions.id = comments.solution_id
				WHERE solutions.problem_id = problems.id AND comments.deleted_at IS NULL AND solutions.deleted_at IS NULL) AS activity_score`).
		Order("activity_score DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
