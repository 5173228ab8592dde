package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNameRequired = errors.New("project name is required")
	ErrProjectNameTooLong  = errors.New("project name too long")
	ErrProjectNameTaken    = errors.New("project name already exists")
	ErrTeamNotFound        = errors.New("team not found")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	teamRepo    repository.TeamRepository
	taskRepo    repository.TaskRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, teamRepo repository.TeamRepository, taskRepo repository.TaskRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
		taskRepo:    taskRepo,
	}
}

// CreateProjectInput represents the project creation form.
type CreateProjectInput struct {
	Name        string
	Description string
	TeamID      *uint64
}

// CreateProject validates the form and creates the project.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}
	if len(name) > constants.MaxNameLength {
		return nil, ErrProjectNameTooLong
	}

	if _, err := s.projectRepo.FindByName(name); err == nil {
		return nil, ErrProjectNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check project name: %w", err)
	}

	if input.TeamID != nil {
		if _, err := s.teamRepo.FindByID(*input.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to check team: %w", err)
		}
	}

	project := &models.Project{
		Name:        name,
		Description: input.Description,
		TeamID:      input.TeamID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.projectRepo.FindByID(project.ID, "Team")
}

// ListProjects returns one page of projects filtered by name substring.
func (s *ProjectService) ListProjects(query string, page int) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(repository.NameFilter{
		Query:    query,
		Page:     page,
		PageSize: constants.ListPageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, nil
}

// ProjectDetail is the project detail view: the project with its team plus
// its tasks split by completion state.
type ProjectDetail struct {
	Project         *models.Project
	TasksInProgress []models.Task
	TasksCompleted  []models.Task
}

// GetProject resolves the project detail view.
func (s *ProjectService) GetProject(id uint64) (*ProjectDetail, error) {
	project, err := s.projectRepo.FindByID(id, "Team")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	inProgress, err := s.taskRepo.ListByProject(id, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks in progress: %w", err)
	}
	completed, err := s.taskRepo.ListByProject(id, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}

	return &ProjectDetail{
		Project:         project,
		TasksInProgress: inProgress,
		TasksCompleted:  completed,
	}, nil
}

// DeleteProject removes a project and its tasks.
func (s *ProjectService) DeleteProject(id uint64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
