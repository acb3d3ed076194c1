package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/service"
	"github.com/rs/zerolog/log"
)

type AccountController struct {
	userService service.UserService
}

func NewAccountController(userService service.UserService) *AccountController {
	return &AccountController{userService: userService}
}

// Register godoc
// @Summary Register a user
// @Description Create a user record. Authentication is handled outside this service; subsequent requests identify the user by user_id.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "Username and optional email"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Username already exists"
// @Router /users [post]
func (c *AccountController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.userService.Register(req)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("Register: Service error")
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, user)
}
