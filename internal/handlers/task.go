package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/idubina/it-company-task-manager/internal/dto"
	apierrors "github.com/idubina/it-company-task-manager/internal/errors"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/services"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns one page of the ranked task search. The `name` query
// parameter is matched against task name, type name and tag names.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	query := c.Query("name")
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.SearchTasks(services.SearchTasksInput{
		Query: query,
		Page:  params.Page,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params.Page, params.PageSize, total, query))
}

// GetTask returns a task with its relations.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task from the submitted form.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Name        string     `json:"name" binding:"required"`
		Description string     `json:"description"`
		DeadlineAt  *time.Time `json:"deadline_at"`
		Priority    string     `json:"priority"`
		ProjectID   *uint64    `json:"project_id"`
		TaskTypeID  *uint64    `json:"task_type_id"`
		AssigneeIDs []uint64   `json:"assignee_ids"`
		TagIDs      []uint64   `json:"tag_ids"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		DeadlineAt:  req.DeadlineAt,
		Priority:    models.TaskPriority(req.Priority),
		ProjectID:   req.ProjectID,
		TaskTypeID:  req.TaskTypeID,
		AssigneeIDs: req.AssigneeIDs,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update to a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Name          *string    `json:"name"`
		Description   *string    `json:"description"`
		DeadlineAt    *time.Time `json:"deadline_at"`
		ClearDeadline bool       `json:"clear_deadline"`
		Priority      *string    `json:"priority"`
		IsCompleted   *bool      `json:"is_completed"`
		ProjectID     *uint64    `json:"project_id"`
		TaskTypeID    *uint64    `json:"task_type_id"`
		ClearTaskType bool       `json:"clear_task_type"`
		AssigneeIDs   *[]uint64  `json:"assignee_ids"`
		TagIDs        *[]uint64  `json:"tag_ids"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Name:          req.Name,
		Description:   req.Description,
		DeadlineAt:    req.DeadlineAt,
		ClearDeadline: req.ClearDeadline,
		IsCompleted:   req.IsCompleted,
		ProjectID:     req.ProjectID,
		TaskTypeID:    req.TaskTypeID,
		ClearTaskType: req.ClearTaskType,
		AssigneeIDs:   req.AssigneeIDs,
		TagIDs:        req.TagIDs,
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	task, err := h.taskService.UpdateTask(id, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ToggleTask flips the completion flag of a task.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleCompleted(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskNameRequired),
		errors.Is(err, services.ErrTaskNameTooLong),
		errors.Is(err, services.ErrProjectRequired),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskTypeNotFound),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidAssignee),
		errors.Is(err, services.ErrInvalidTag):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
