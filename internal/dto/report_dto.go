package dto

import "time"

// Report row types. Each one is the scan target of a single aggregation query;
// column aliases in the queries match the field names.

type TopicCount struct {
	Topic *string `json:"topic"` // nil groups problems that never got a topic
	Count int64   `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"` // calendar date, YYYY-MM-DD
	Count int64  `json:"count"`
}

type UserActivity struct {
	UserID          uint   `json:"user_id"`
	Username        string `json:"username"`
	SolutionsPosted int64  `json:"solutions_posted"`
	CommentsPosted  int64  `json:"comments_posted"`
	ActivityScore   int64  `json:"activity_score"`
}

type AnswerTypeCount struct {
	AnswerType string `json:"answer_type"`
	Count      int64  `json:"count"`
}

// SolutionScore ranks a solution by total engagement: score counts every vote,
// up or down, not the net.
type SolutionScore struct {
	SolutionID  uint   `json:"solution_id"`
	ProblemID   uint   `json:"problem_id"`
	AIGenerated bool   `json:"ai_generated"`
	AnswerType  string `json:"answer_type"`
	Upvotes     int64  `json:"upvotes"`
	Downvotes   int64  `json:"downvotes"`
	Score       int64  `json:"score"`
}

// UserReputation only counts upvotes received on human-authored solutions.
type UserReputation struct {
	UserID         uint   `json:"user_id"`
	Username       string `json:"username"`
	TotalUpvotes   int64  `json:"total_upvotes"`
	TotalSolutions int64  `json:"total_solutions"`
}

type ProblemActivity struct {
	ProblemID     uint   `json:"problem_id"`
	Description   string `json:"description"`
	SolutionCount int64  `json:"solution_count"`
	CommentCount  int64  `json:"comment_count"`
	ActivityScore int64  `json:"activity_score"`
}

type EngagementReport struct {
	TotalProblems    int64          `json:"total_problems"`
	TotalSolutions   int64          `json:"total_solutions"`
	TotalComments    int64          `json:"total_comments"`
	TotalVotes       int64          `json:"total_votes"`
	ProblemsPerTopic []TopicCount   `json:"problems_per_topic"`
	ProblemsDaily    []DailyCount   `json:"problems_daily"`
	TopActiveUsers   []UserActivity `json:"top_active_users"`
}

type AIReport struct {
	AISolutions      int64             `json:"ai_solutions"`
	HumanSolutions   int64             `json:"human_solutions"`
	AIAvgVotes       float64           `json:"ai_avg_votes"`
	HumanAvgVotes    float64           `json:"human_avg_votes"`
	AIAnswerTypes    []AnswerTypeCount `json:"ai_answer_types"`
	HumanAnswerTypes []AnswerTypeCount `json:"human_answer_types"`
	AITopicBreakdown []TopicCount      `json:"ai_topic_breakdown"`
}

type OversightReport struct {
	TopAISolutions     []SolutionScore   `json:"top_ai_solutions"`
	TopHumanSolutions  []SolutionScore   `json:"top_human_solutions"`
	BestUsers          []UserReputation  `json:"best_users"`
	MostActiveProblems []ProblemActivity `json:"most_active_problems"`
}

// ReportSnapshot is the full dashboard report, computed fresh on every build.
type ReportSnapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Engagement  EngagementReport `json:"engagement"`
	AI          AIReport         `json:"ai"`
	Oversight   OversightReport  `json:"oversight"`
}
