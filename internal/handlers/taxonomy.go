package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/idubina/it-company-task-manager/internal/dto"
	apierrors "github.com/idubina/it-company-task-manager/internal/errors"
	"github.com/idubina/it-company-task-manager/internal/services"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// TaxonomyHandler coordinates tag and task-type HTTP handlers, including the
// per-tag and per-type task drill-downs.
type TaxonomyHandler struct {
	taxonomyService *services.TaxonomyService
	taskService     *services.TaskService
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(taxonomyService *services.TaxonomyService, taskService *services.TaskService) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyService: taxonomyService,
		taskService:     taskService,
	}
}

// ListTags returns one page of tags filtered by the `name` query parameter.
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	query := c.Query("name")
	params := utils.GetPaginationParams(c)

	tags, total, err := h.taxonomyService.ListTags(query, params.Page)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tags")
		return
	}

	c.JSON(http.StatusOK, dto.ToTagListResponse(tags, params.Page, params.PageSize, total, query))
}

// GetTag is the tag drill-down: the tag plus its tasks, searchable and
// ranked like the main task list.
func (h *TaxonomyHandler) GetTag(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tag, err := h.taxonomyService.GetTag(id)
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}

	query := c.Query("name")
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.SearchTasks(services.SearchTasksInput{
		Query: query,
		TagID: &tag.ID,
		Page:  params.Page,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.TagDrilldownResponse{
		Tag:              dto.ToTagDTO(*tag),
		TaskListResponse: dto.ToTaskListResponse(tasks, params.Page, params.PageSize, total, query),
	})
}

// CreateTag creates a new tag.
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	type CreateTagRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := h.taxonomyService.CreateTag(req.Name)
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagDTO(*tag))
}

// DeleteTag removes a tag.
func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.DeleteTag(id); err != nil {
		respondTaxonomyError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTaskTypes returns one page of task types filtered by the `name` query
// parameter.
func (h *TaxonomyHandler) ListTaskTypes(c *gin.Context) {
	query := c.Query("name")
	params := utils.GetPaginationParams(c)

	taskTypes, total, err := h.taxonomyService.ListTaskTypes(query, params.Page)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch task types")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskTypeListResponse(taskTypes, params.Page, params.PageSize, total, query))
}

// GetTaskType is the task-type drill-down: the type plus its tasks.
func (h *TaxonomyHandler) GetTaskType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	taskType, err := h.taxonomyService.GetTaskType(id)
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}

	query := c.Query("name")
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.SearchTasks(services.SearchTasksInput{
		Query:      query,
		TaskTypeID: &taskType.ID,
		Page:       params.Page,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.TaskTypeDrilldownResponse{
		TaskType:         dto.ToTaskTypeDTO(*taskType),
		TaskListResponse: dto.ToTaskListResponse(tasks, params.Page, params.PageSize, total, query),
	})
}

// CreateTaskType creates a new task type.
func (h *TaxonomyHandler) CreateTaskType(c *gin.Context) {
	type CreateTaskTypeRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateTaskTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	taskType, err := h.taxonomyService.CreateTaskType(req.Name)
	if err != nil {
		respondTaxonomyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskTypeDTO(*taskType))
}

// DeleteTaskType removes a task type.
func (h *TaxonomyHandler) DeleteTaskType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.DeleteTaskType(id); err != nil {
		respondTaxonomyError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaxonomyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrTaskTypeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTagNameTaken),
		errors.Is(err, services.ErrTaskTypeNameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTagNameRequired),
		errors.Is(err, services.ErrTaskTypeNameRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
