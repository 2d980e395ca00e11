package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-tracker/errors"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/dto"
	taskdto "github.com/johnquangdev/meeting-tracker/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	taskUsecase "github.com/johnquangdev/meeting-tracker/internal/usecase/task"
)

// TaskService is the task use case consumed by the handler
type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]*entities.Task, error)
	GetTask(ctx context.Context, userID string, id uuid.UUID) (*entities.Task, error)
	CreateTask(ctx context.Context, input taskUsecase.CreateTaskInput) (*entities.Task, error)
	UpdateTaskStatus(ctx context.Context, userID string, id uuid.UUID, status entities.TaskStatus) (*entities.Task, error)
	GetTaskStats(ctx context.Context, userID string) (*entities.TaskStats, error)
}

// Task handles task HTTP requests
type Task struct {
	service TaskService
	logger  *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service TaskService, logger *zap.Logger) *Task {
	return &Task{service: service, logger: logger}
}

// ListTasks handles GET /tasks
// @Summary      List tasks
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  taskdto.TaskResponse
// @Router       /tasks [get]
func (h *Task) ListTasks(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	tasks, err := h.service.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(tasks))
}

// GetTask handles GET /tasks/:id
// @Summary      Get task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID (UUID)"
// @Success      200  {object}  taskdto.TaskResponse
// @Failure      404  {object}  map[string]interface{}  "Task not found"
// @Router       /tasks/{id} [get]
func (h *Task) GetTask(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.service.GetTask(c.Request().Context(), userID, id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, id.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskResponse(t))
}

// CreateTask handles POST /tasks
// @Summary      Create task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      taskdto.CreateTaskRequest  true  "Task"
// @Success      201      {object}  taskdto.TaskResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}  "Meeting not found"
// @Router       /tasks [post]
func (h *Task) CreateTask(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskdto.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := taskUsecase.CreateTaskInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entities.TaskStatus(req.Status),
	}

	if req.MeetingID != nil {
		meetingID, err := uuid.Parse(*req.MeetingID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("meetingId must be a valid UUID"))
		}
		input.MeetingID = &meetingID
	}

	if req.DueDate != nil {
		due, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("dueDate must be a valid date"))
		}
		input.DueDate = &due
	}

	resourceID := ""
	if req.MeetingID != nil {
		resourceID = *req.MeetingID
	}

	t, err := h.service.CreateTask(c.Request().Context(), input)
	if err != nil {
		if input.Status != "" && !input.Status.IsValid() {
			resourceID = req.Status
		}
		return HandleError(h.logger, c, toAppError(err, resourceID))
	}

	return HandleCreated(h.logger, c, presenter.ToTaskResponse(t))
}

// UpdateTaskStatus handles PATCH /tasks/:id/status
// @Summary      Update task status
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                           true  "Task ID (UUID)"
// @Param        request  body      taskdto.UpdateTaskStatusRequest  true  "Status"
// @Success      200      {object}  taskdto.TaskResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid status"
// @Failure      404      {object}  map[string]interface{}  "Task not found"
// @Router       /tasks/{id}/status [patch]
func (h *Task) UpdateTaskStatus(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskdto.UpdateTaskStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	status := entities.TaskStatus(req.Status)
	t, err := h.service.UpdateTaskStatus(c.Request().Context(), userID, id, status)
	if err != nil {
		if !status.IsValid() {
			return HandleError(h.logger, c, toAppError(err, req.Status))
		}
		return HandleError(h.logger, c, toAppError(err, id.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskResponse(t))
}

// GetTaskStats handles GET /tasks/stats
// @Summary      Task statistics
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entities.TaskStats
// @Router       /tasks/stats [get]
func (h *Task) GetTaskStats(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	stats, err := h.service.GetTaskStats(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, stats)
}
