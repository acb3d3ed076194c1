package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/service"
	"github.com/rs/zerolog/log"
)

type ProblemController struct {
	problemService service.ProblemService
}

func NewProblemController(problemService service.ProblemService) *ProblemController {
	return &ProblemController{problemService: problemService}
}

// GetAllProblems godoc
// @Summary List all problems
// @Description Get the problem feed, newest first.
// @Tags Problems
// @Produce json
// @Success 200 {array} dto.ProblemSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /problems [get]
func (c *ProblemController) GetAllProblems(ctx *gin.Context) {
	problems, err := c.problemService.GetAllProblems()
	if err != nil {
		log.Error().Err(err).Msg("GetAllProblems: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve problems", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, problems)
}

// SubmitProblem godoc
// @Summary Submit a coding problem
// @Description Create a problem. One AI-generated solution is produced synchronously; AI failures degrade the topic and solution content but the problem is always created.
// @Tags Problems
// @Accept json
// @Produce json
// @Param problem body dto.SubmitProblemRequest true "Submitting user and problem description"
// @Success 201 {object} dto.ProblemDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /problems [post]
func (c *ProblemController) SubmitProblem(ctx *gin.Context) {
	var req dto.SubmitProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	detail, err := c.problemService.SubmitProblem(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("SubmitProblem: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit problem", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// GetProblemDetail godoc
// @Summary Get a problem with its ranked solutions
// @Description Full problem details: solutions carry vote counts and comments and come back in display order (AI first, then answer type, votes, recency).
// @Tags Problems
// @Produce json
// @Param problem_id path int true "Problem ID"
// @Success 200 {object} dto.ProblemDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Problem ID format"
// @Failure 404 {object} dto.ErrorResponse "Problem not found"
// @Router /problems/{problem_id} [get]
func (c *ProblemController) GetProblemDetail(ctx *gin.Context) {
	problemID, err := strconv.ParseUint(ctx.Param("problem_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Problem ID format"})
		return
	}

	detail, err := c.problemService.GetProblemDetail(uint(problemID))
	if err != nil {
		log.Warn().Err(err).Uint64("problemID", problemID).Msg("GetProblemDetail: Problem not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
