package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/dto"
	apierrors "github.com/idubina/it-company-task-manager/internal/errors"
	"github.com/idubina/it-company-task-manager/internal/services"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// WorkerHandler coordinates worker HTTP handlers.
type WorkerHandler struct {
	workerService *services.WorkerService
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(workerService *services.WorkerService) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
	}
}

// ListWorkers returns one page of workers filtered by the `username` query
// parameter.
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	query := c.Query("username")
	params := utils.GetPaginationParams(c)

	workers, total, err := h.workerService.ListWorkers(query, params.Page)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch workers")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerListResponse(workers, params.Page, params.PageSize, total, query))
}

// GetWorker returns the worker detail view with the task and team breakdown.
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.workerService.GetWorker(id)
	if err != nil {
		respondWorkerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WorkerDetailResponse{
		Worker:          dto.ToWorkerDTO(*detail.Worker),
		Teams:           dto.ToTeamDTOs(detail.Teams),
		TasksInProgress: dto.ToTaskListItemDTOs(detail.TasksInProgress),
		TasksCompleted:  dto.ToTaskListItemDTOs(detail.TasksCompleted),
	})
}

// CreateWorker registers a new worker.
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	type CreateWorkerRequest struct {
		Username   string  `json:"username" binding:"required,min=3,max=150"`
		Password   string  `json:"password" binding:"required"`
		FirstName  string  `json:"first_name"`
		LastName   string  `json:"last_name"`
		PositionID *uint64 `json:"position_id"`
	}

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	worker, err := h.workerService.CreateWorker(services.CreateWorkerInput{
		Username:   req.Username,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		PositionID: req.PositionID,
	})
	if err != nil {
		respondWorkerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkerDTO(*worker))
}

// DeleteWorker removes a worker.
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.workerService.DeleteWorker(id); err != nil {
		respondWorkerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondWorkerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrUsernameTooLong),
		errors.Is(err, services.ErrPositionNotFound):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
