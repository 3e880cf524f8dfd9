package handlers

import (
	"errors"
	"net/http"

	"todo-service/internal/dto"
	"todo-service/internal/logging"
	"todo-service/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user registration.
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "User"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Name, req.Username)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username"})
			return
		}
		logging.FromContext(c).WithError(err).Error("register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Todos:    todosToResponses(user.Todos),
	})
}
