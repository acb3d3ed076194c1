package dto

// RegisterUserRequest creates a user record. Authentication is handled outside
// this service; callers identify themselves with an explicit user_id afterwards.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// SubmitProblemRequest submits a coding problem. Submission synchronously
// produces one AI-generated solution for the problem.
type SubmitProblemRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateSolutionRequest adds a human-authored solution to an existing problem.
type CreateSolutionRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateCommentRequest adds a comment to an existing solution.
type CreateCommentRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ApplyVoteRequest identifies the voter; the vote type comes from the URL.
type ApplyVoteRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}
