package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
	"tasktrack/internal/service"
	"tasktrack/internal/session"
)

// ToDoHandler handles to-do endpoints. Every route runs behind the session gate.
type ToDoHandler struct {
	todoService service.ToDoService
}

// NewToDoHandler creates a new to-do handler.
func NewToDoHandler(todoService service.ToDoService) *ToDoHandler {
	return &ToDoHandler{todoService: todoService}
}

// ToDoRequest carries to-do content for create and edit.
type ToDoRequest struct {
	Content string `json:"content"`
}

// Test godoc
// @Summary To-do route probe
// @Tags todos
// @Produce plain
// @Success 200 {string} string
// @Router /todos/test [get]
func (h *ToDoHandler) Test(c echo.Context) error {
	return c.String(http.StatusOK, "Todos route working")
}

// Create godoc
// @Summary Create a to-do
// @Tags todos
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body ToDoRequest true "To-do content"
// @Success 200 {object} model.ToDo
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos/new [post]
func (h *ToDoHandler) Create(c echo.Context) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return err
	}

	var req ToDoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	todo, err := h.todoService.Create(c.Request().Context(), user.ID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// ListCurrent godoc
// @Summary List the caller's to-dos
// @Description Complete items newest-completed first, incomplete items newest first.
// @Tags todos
// @Produce json
// @Security CookieAuth
// @Success 200 {object} model.ToDoList
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos/current [get]
func (h *ToDoHandler) ListCurrent(c echo.Context) error {
	user, err := session.CurrentUser(c)
	if err != nil {
		return err
	}

	list, err := h.todoService.ListCurrent(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Complete godoc
// @Summary Mark a to-do complete
// @Tags todos
// @Produce json
// @Security CookieAuth
// @Param id path string true "To-do ID"
// @Success 200 {object} model.ToDo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id}/complete [put]
func (h *ToDoHandler) Complete(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.MarkComplete(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Incomplete godoc
// @Summary Mark a to-do incomplete
// @Tags todos
// @Produce json
// @Security CookieAuth
// @Param id path string true "To-do ID"
// @Success 200 {object} model.ToDo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id}/incomplete [put]
func (h *ToDoHandler) Incomplete(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.MarkIncomplete(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Update godoc
// @Summary Edit a to-do's content
// @Tags todos
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "To-do ID"
// @Param request body ToDoRequest true "To-do content"
// @Success 200 {object} model.ToDo
// @Failure 400 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [put]
func (h *ToDoHandler) Update(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	var req ToDoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	todo, err := h.todoService.UpdateContent(c.Request().Context(), user.ID, id, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete a to-do
// @Tags todos
// @Produce json
// @Security CookieAuth
// @Param id path string true "To-do ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *ToDoHandler) Delete(c echo.Context) error {
	user, id, err := h.target(c)
	if err != nil {
		return err
	}

	if err := h.todoService.Delete(c.Request().Context(), user.ID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// target resolves the caller and the to-do id from the path.
// An id that is not a UUID cannot exist, so it is reported as not found.
func (h *ToDoHandler) target(c echo.Context) (*model.User, uuid.UUID, error) {
	user, err := session.CurrentUser(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, uuid.Nil, apperrors.ErrToDoNotFound
	}
	return user, id, nil
}
