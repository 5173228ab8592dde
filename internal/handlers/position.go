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

// PositionHandler coordinates position HTTP handlers.
type PositionHandler struct {
	positionService *services.PositionService
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(positionService *services.PositionService) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
	}
}

// ListPositions returns one page of positions filtered by the `name` query
// parameter.
func (h *PositionHandler) ListPositions(c *gin.Context) {
	query := c.Query("name")
	params := utils.GetPaginationParams(c)

	positions, total, err := h.positionService.ListPositions(query, params.Page)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch positions")
		return
	}

	c.JSON(http.StatusOK, dto.ToPositionListResponse(positions, params.Page, params.PageSize, total, query))
}

// GetPosition returns the position detail view with its workers.
func (h *PositionHandler) GetPosition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	position, err := h.positionService.GetPosition(id)
	if err != nil {
		respondPositionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PositionDetailResponse{
		Position: dto.ToPositionDTO(*position),
		Workers:  dto.ToWorkerDTOs(position.Workers),
	})
}

// CreatePosition creates a new position.
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	type CreatePositionRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	position, err := h.positionService.CreatePosition(req.Name)
	if err != nil {
		respondPositionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPositionDTO(*position))
}

// DeletePosition removes a position unless workers still hold it.
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.positionService.DeletePosition(id); err != nil {
		respondPositionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondPositionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPositionNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPositionNameTaken),
		errors.Is(err, services.ErrPositionInUse):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPositionNameRequired),
		errors.Is(err, services.ErrPositionNameTooLong):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
