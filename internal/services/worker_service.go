package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrUsernameRequired     = errors.New("username is required")
	ErrUsernameTooLong      = errors.New("username too long")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrPositionNotFound     = errors.New("position not found")
)

// WorkerService handles worker business logic.
type WorkerService struct {
	workerRepo repository.WorkerRepository
	posRepo    repository.PositionRepository
	taskRepo   repository.TaskRepository
}

// NewWorkerService creates a new WorkerService.
func NewWorkerService(workerRepo repository.WorkerRepository, posRepo repository.PositionRepository, taskRepo repository.TaskRepository) *WorkerService {
	return &WorkerService{
		workerRepo: workerRepo,
		posRepo:    posRepo,
		taskRepo:   taskRepo,
	}
}

// CreateWorkerInput represents the worker creation form.
type CreateWorkerInput struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	PositionID *uint64
}

// CreateWorker validates the form and registers a new worker.
func (s *WorkerService) CreateWorker(input CreateWorkerInput) (*models.Worker, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(username) > constants.MaxUsernameLength {
		return nil, ErrUsernameTooLong
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.workerRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if input.PositionID != nil {
		if _, err := s.posRepo.FindByID(*input.PositionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPositionNotFound
			}
			return nil, fmt.Errorf("failed to check position: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	worker := &models.Worker{
		Username:     username,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(hashedPassword),
		PositionID:   input.PositionID,
	}

	if err := s.workerRepo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return s.workerRepo.FindByID(worker.ID, "Position")
}

// ListWorkers returns one page of workers filtered by username substring.
func (s *WorkerService) ListWorkers(query string, page int) ([]models.Worker, int64, error) {
	workers, total, err := s.workerRepo.List(repository.NameFilter{
		Query:    query,
		Page:     page,
		PageSize: constants.ListPageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
	}

	return workers, total, nil
}

// WorkerDetail is the worker detail view: the worker with its position and
// teams plus the assigned tasks split by completion state.
type WorkerDetail struct {
	Worker          *models.Worker
	Teams           []models.Team
	TasksInProgress []models.Task
	TasksCompleted  []models.Task
}

// GetWorker resolves the worker detail view.
func (s *WorkerService) GetWorker(id uint64) (*WorkerDetail, error) {
	worker, err := s.workerRepo.FindByID(id, "Position", "Teams")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}

	teams := worker.Teams
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })

	inProgress, err := s.taskRepo.ListByWorker(id, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks in progress: %w", err)
	}
	completed, err := s.taskRepo.ListByWorker(id, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed tasks: %w", err)
	}

	return &WorkerDetail{
		Worker:          worker,
		Teams:           teams,
		TasksInProgress: inProgress,
		TasksCompleted:  completed,
	}, nil
}

// DeleteWorker removes a worker.
func (s *WorkerService) DeleteWorker(id uint64) error {
	if _, err := s.workerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkerNotFound
		}
		return fmt.Errorf("failed to find worker: %w", err)
	}

	if err := s.workerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}
