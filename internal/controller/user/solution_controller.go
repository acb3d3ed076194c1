package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/lshigami/CodeClinic/internal/service"
	"github.com/rs/zerolog/log"
)

type SolutionController struct {
	solutionService service.SolutionService
	commentService  service.CommentService
	voteService     service.VoteService
}

func NewSolutionController(
	solutionService service.SolutionService,
	commentService service.CommentService,
	voteService service.VoteService,
) *SolutionController {
	return &SolutionController{
		solutionService: solutionService,
		commentService:  commentService,
		voteService:     voteService,
	}
}

// CreateSolution godoc
// @Summary Add a human-authored solution to a problem
// @Tags Solutions
// @Accept json
// @Produce json
// @Param problem_id path int true "Problem ID"
// @Param solution body dto.CreateSolutionRequest true "Author and solution content"
// @Success 201 {object} dto.SolutionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Problem not found"
// @Router /problems/{problem_id}/solutions [post]
func (c *SolutionController) CreateSolution(ctx *gin.Context) {
	problemID, err := strconv.ParseUint(ctx.Param("problem_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Problem ID format"})
		return
	}

	var req dto.CreateSolutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	solution, err := c.solutionService.CreateSolution(uint(problemID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("problemID", problemID).Msg("CreateSolution: Service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, solution)
}

// AddComment godoc
// @Summary Comment on a solution
// @Tags Solutions
// @Accept json
// @Produce json
// @Param solution_id path int true "Solution ID"
// @Param comment body dto.CreateCommentRequest true "Author and comment content"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Solution not found"
// @Router /solutions/{solution_id}/comments [post]
func (c *SolutionController) AddComment(ctx *gin.Context) {
	solutionID, err := strconv.ParseUint(ctx.Param("solution_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Solution ID format"})
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	comment, err := c.commentService.AddComment(uint(solutionID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("solutionID", solutionID).Msg("AddComment: Service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// ApplyVote godoc
// @Summary Toggle a vote on a solution
// @Description Voting with no prior vote records it; repeating the same vote removes it; voting the other way overwrites the existing vote. Returns fresh counts.
// @Tags Solutions
// @Accept json
// @Produce json
// @Param solution_id path int true "Solution ID"
// @Param vote_type path string true "Vote type" Enums(up, down)
// @Param vote body dto.ApplyVoteRequest true "Voting user"
// @Success 200 {object} dto.VoteResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Solution not found"
// @Router /solutions/{solution_id}/votes/{vote_type} [post]
func (c *SolutionController) ApplyVote(ctx *gin.Context) {
	solutionID, err := strconv.ParseUint(ctx.Param("solution_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Solution ID format"})
		return
	}
	voteType := ctx.Param("vote_type")
	if !model.IsValidVoteType(voteType) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid vote type, must be 'up' or 'down'"})
		return
	}

	var req dto.ApplyVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.voteService.ApplyVote(req.UserID, uint(solutionID), voteType)
	if err != nil {
		log.Warn().Err(err).Uint64("solutionID", solutionID).Str("voteType", voteType).Msg("ApplyVote: Service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
