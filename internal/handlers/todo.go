package handlers

import (
	"errors"
	"net/http"

	"todo-service/internal/auth"
	dom "todo-service/internal/domain"
	"todo-service/internal/dto"
	"todo-service/internal/logging"
	"todo-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's todos
// @Tags         todos
// @Produce      json
// @Security     UsernameHeader
// @Success      200  {array}   dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UsernameFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, todosToResponses(list))
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     UsernameHeader
// @Param        body  body      dto.TodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo"})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), auth.UsernameFromContext(c), req.Title, req.Deadline.Time())
	if err != nil {
		if errors.Is(err, service.ErrInvalidTodo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo"})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(t))
}

// Update godoc
// @Summary      Replace a todo's title and deadline
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     UsernameHeader
// @Param        id    path      string  true  "Todo ID"
// @Param        body  body      dto.TodoRequest  true  "Todo body"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), auth.UsernameFromContext(c), c.Param("id"), req.Title, req.Deadline.Time())
	if err != nil {
		if errors.Is(err, service.ErrInvalidTodo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Complete godoc
// @Summary      Mark a todo as done
// @Tags         todos
// @Produce      json
// @Security     UsernameHeader
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id}/done [patch]
func (h *TodoHandler) Complete(c *gin.Context) {
	t, err := h.svc.Complete(c.Request.Context(), auth.UsernameFromContext(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Security     UsernameHeader
// @Param        id   path  string  true  "Todo ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UsernameFromContext(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// fail writes the response for errors shared by every todo route.
func (h *TodoHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	case errors.Is(err, service.ErrInvalidCredential):
		c.JSON(http.StatusBadRequest, gin.H{"error": ""})
	default:
		_ = c.Error(err)
		logging.FromContext(c).WithError(err).Error("todo request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		Deadline:  t.Deadline,
		CreatedAt: t.CreatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
