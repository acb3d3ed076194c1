package dto

import "time"

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProblemSummaryResponse is used for the problem feed listing.
type ProblemSummaryResponse struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Topic       *string   `json:"topic,omitempty"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	SolutionID uint      `json:"solution_id"`
	Content    string    `json:"content"`
	AuthorID   *uint     `json:"author_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SolutionResponse is a solution annotated with its vote counts. The problem
// detail endpoint returns these in display (rank) order.
type SolutionResponse struct {
	ID             uint              `json:"id"`
	ProblemID      uint              `json:"problem_id"`
	Content        string            `json:"content"`
	AuthorID       *uint             `json:"author_id,omitempty"`
	AIGenerated    bool              `json:"ai_generated"`
	AnswerType     string            `json:"answer_type"`
	UpvotesCount   int64             `json:"upvotes_count"`
	DownvotesCount int64             `json:"downvotes_count"`
	Comments       []CommentResponse `json:"comments,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type ProblemDetailResponse struct {
	ID          uint               `json:"id"`
	Description string             `json:"description"`
	Topic       *string            `json:"topic,omitempty"`
	UserID      uint               `json:"user_id"`
	Solutions   []SolutionResponse `json:"solutions"`
	CreatedAt   time.Time          `json:"created_at"`
}

type VoteResultResponse struct {
	Message   string `json:"message"`
	Upvotes   int64  `json:"upvotes"`
	Downvotes int64  `json:"downvotes"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
