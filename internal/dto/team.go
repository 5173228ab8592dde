package dto

import (
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID      uint64      `json:"id"`
	Name    string      `json:"name"`
	Members []WorkerDTO `json:"members,omitempty"`
}

// TeamListResponse represents a paginated, filtered team list
type TeamListResponse struct {
	Teams      []TeamDTO      `json:"teams"`
	Pagination utils.PageMeta `json:"pagination"`
	Query      string         `json:"query"`
}

// TeamDetailResponse is the team detail view with members and owned projects
type TeamDetailResponse struct {
	Team     TeamDTO      `json:"team"`
	Members  []WorkerDTO  `json:"members"`
	Projects []ProjectDTO `json:"projects"`
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	dto := TeamDTO{
		ID:   team.ID,
		Name: team.Name,
	}

	if len(team.Members) > 0 {
		dto.Members = ToWorkerDTOs(team.Members)
	}

	return dto
}

// ToTeamDTOs converts a slice of teams
func ToTeamDTOs(teams []models.Team) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i, team := range teams {
		dtos[i] = ToTeamDTO(team)
	}
	return dtos
}

// ToTeamListResponse builds the team list envelope
func ToTeamListResponse(teams []models.Team, page int, pageSize int, total int64, query string) TeamListResponse {
	return TeamListResponse{
		Teams:      ToTeamDTOs(teams),
		Pagination: utils.NewPageMeta(page, pageSize, total),
		Query:      query,
	}
}
