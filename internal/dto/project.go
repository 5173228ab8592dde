package dto

import (
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Team        *TeamDTO `json:"team,omitempty"`
}

// ProjectListResponse represents a paginated, filtered project list
type ProjectListResponse struct {
	Projects   []ProjectDTO   `json:"projects"`
	Pagination utils.PageMeta `json:"pagination"`
	Query      string         `json:"query"`
}

// ProjectDetailResponse is the project detail view with the task breakdown
type ProjectDetailResponse struct {
	Project         ProjectDTO        `json:"project"`
	TasksInProgress []TaskListItemDTO `json:"tasks_in_progress"`
	TasksCompleted  []TaskListItemDTO `json:"tasks_completed"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
	}

	if project.Team != nil {
		team := ToTeamDTO(*project.Team)
		dto.Team = &team
	}

	return dto
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToProjectListResponse builds the project list envelope
func ToProjectListResponse(projects []models.Project, page int, pageSize int, total int64, query string) ProjectListResponse {
	return ProjectListResponse{
		Projects:   ToProjectDTOs(projects),
		Pagination: utils.NewPageMeta(page, pageSize, total),
		Query:      query,
	}
}
