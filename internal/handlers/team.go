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

// TeamHandler coordinates team HTTP handlers.
type TeamHandler struct {
	teamService *services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams returns one page of teams filtered by the `name` query parameter.
func (h *TeamHandler) ListTeams(c *gin.Context) {
	query := c.Query("name")
	params := utils.GetPaginationParams(c)

	teams, total, err := h.teamService.ListTeams(query, params.Page)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch teams")
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamListResponse(teams, params.Page, params.PageSize, total, query))
}

// GetTeam returns the team detail view with members and owned projects.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(id)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TeamDetailResponse{
		Team:     dto.TeamDTO{ID: team.ID, Name: team.Name},
		Members:  dto.ToWorkerDTOs(team.Members),
		Projects: dto.ToProjectDTOs(team.Projects),
	})
}

// CreateTeam creates a new team with the selected members.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	type CreateTeamRequest struct {
		Name      string   `json:"name" binding:"required"`
		MemberIDs []uint64 `json:"member_ids"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		Name:      req.Name,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// DeleteTeam removes a team.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(id); err != nil {
		respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTeamNameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrTeamNameTooLong),
		errors.Is(err, services.ErrInvalidMember):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
