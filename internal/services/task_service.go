package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskNameRequired = errors.New("task name is required")
	ErrTaskNameTooLong  = errors.New("task name too long")
	ErrProjectRequired  = errors.New("project is required")
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskTypeNotFound = errors.New("task type not found")
	ErrInvalidPriority  = errors.New("priority must be one of URGENT, HIGH, MEDIUM, LOW")
	ErrInvalidAssignee  = errors.New("one or more assignees do not exist")
	ErrInvalidTag       = errors.New("one or more tags do not exist")
)

// TaskService handles task business logic, most notably the ranked search
// behind the task list and the tag/type drill-downs.
type TaskService struct {
	taskRepo     repository.TaskRepository
	projectRepo  repository.ProjectRepository
	taskTypeRepo repository.TaskTypeRepository
	tagRepo      repository.TagRepository
	workerRepo   repository.WorkerRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	taskTypeRepo repository.TaskTypeRepository,
	tagRepo repository.TagRepository,
	workerRepo repository.WorkerRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		taskTypeRepo: taskTypeRepo,
		tagRepo:      tagRepo,
		workerRepo:   workerRepo,
	}
}

// SearchTasksInput narrows and ranks the task list. TagID and TaskTypeID are
// the drill-down contexts; Query layers the text predicate on top.
type SearchTasksInput struct {
	Query      string
	TagID      *uint64
	TaskTypeID *uint64
	Page       int
}

// SearchTasks returns one ranked, deduplicated page of tasks.
func (s *TaskService) SearchTasks(input SearchTasksInput) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.Search(repository.TaskSearchFilter{
		Query:      input.Query,
		TagID:      input.TagID,
		TaskTypeID: input.TaskTypeID,
		Page:       input.Page,
		PageSize:   constants.ListPageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search tasks: %w", err)
	}

	return tasks, total, nil
}

// GetTask returns a task with its display relations.
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "TaskType", "Project", "Tags", "Assignees")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// CreateTaskInput represents the task creation form.
type CreateTaskInput struct {
	Name        string
	Description string
	DeadlineAt  *time.Time
	Priority    models.TaskPriority
	ProjectID   *uint64
	TaskTypeID  *uint64
	AssigneeIDs []uint64
	TagIDs      []uint64
}

// CreateTask validates the form and creates the task with its assignee and
// tag sets.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTaskNameRequired
	}
	if len(name) > constants.MaxNameLength {
		return nil, ErrTaskNameTooLong
	}
	if input.ProjectID == nil {
		return nil, ErrProjectRequired
	}

	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(input.Priority) {
		return nil, ErrInvalidPriority
	}

	if _, err := s.projectRepo.FindByID(*input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if input.TaskTypeID != nil {
		if _, err := s.taskTypeRepo.FindByID(*input.TaskTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTaskTypeNotFound
			}
			return nil, fmt.Errorf("failed to check task type: %w", err)
		}
	}

	assignees, err := s.resolveAssignees(input.AssigneeIDs)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(input.TagIDs)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:        name,
		Description: input.Description,
		DeadlineAt:  input.DeadlineAt,
		Priority:    input.Priority,
		ProjectID:   *input.ProjectID,
		TaskTypeID:  input.TaskTypeID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if len(assignees) > 0 {
		if err := s.taskRepo.SetAssignees(task, assignees); err != nil {
			return nil, fmt.Errorf("failed to assign workers: %w", err)
		}
	}
	if len(tags) > 0 {
		if err := s.taskRepo.SetTags(task, tags); err != nil {
			return nil, fmt.Errorf("failed to tag task: %w", err)
		}
	}

	return s.taskRepo.FindByID(task.ID, "TaskType", "Project", "Tags", "Assignees")
}

// UpdateTaskInput represents a partial task update. Nil fields are left
// untouched; the Clear flags null the optional references.
type UpdateTaskInput struct {
	Name          *string
	Description   *string
	DeadlineAt    *time.Time
	ClearDeadline bool
	Priority      *models.TaskPriority
	IsCompleted   *bool
	ProjectID     *uint64
	TaskTypeID    *uint64
	ClearTaskType bool
	AssigneeIDs   *[]uint64
	TagIDs        *[]uint64
}

// UpdateTask applies a partial update to an existing task.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTaskNameRequired
		}
		if len(name) > constants.MaxNameLength {
			return nil, ErrTaskNameTooLong
		}
		task.Name = name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.ClearDeadline {
		task.DeadlineAt = nil
	} else if input.DeadlineAt != nil {
		task.DeadlineAt = input.DeadlineAt
	}
	if input.Priority != nil {
		if !models.ValidPriority(*input.Priority) {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.IsCompleted != nil {
		task.IsCompleted = *input.IsCompleted
	}
	if input.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(*input.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to check project: %w", err)
		}
		task.ProjectID = *input.ProjectID
	}
	if input.ClearTaskType {
		task.TaskTypeID = nil
	} else if input.TaskTypeID != nil {
		if _, err := s.taskTypeRepo.FindByID(*input.TaskTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTaskTypeNotFound
			}
			return nil, fmt.Errorf("failed to check task type: %w", err)
		}
		task.TaskTypeID = input.TaskTypeID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if input.AssigneeIDs != nil {
		assignees, err := s.resolveAssignees(*input.AssigneeIDs)
		if err != nil {
			return nil, err
		}
		if err := s.taskRepo.SetAssignees(task, assignees); err != nil {
			return nil, fmt.Errorf("failed to assign workers: %w", err)
		}
	}
	if input.TagIDs != nil {
		tags, err := s.resolveTags(*input.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.taskRepo.SetTags(task, tags); err != nil {
			return nil, fmt.Errorf("failed to tag task: %w", err)
		}
	}

	return s.taskRepo.FindByID(task.ID, "TaskType", "Project", "Tags", "Assignees")
}

// ToggleCompleted flips the completion flag.
func (s *TaskService) ToggleCompleted(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.IsCompleted = !task.IsCompleted

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to toggle completion: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(taskID uint64) error {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) resolveAssignees(ids []uint64) ([]models.Worker, error) {
	ids = uniqueUint64(ids)
	workers, err := s.workerRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to verify assignees: %w", err)
	}
	if len(workers) != len(ids) {
		return nil, ErrInvalidAssignee
	}
	return workers, nil
}

func (s *TaskService) resolveTags(ids []uint64) ([]models.Tag, error) {
	ids = uniqueUint64(ids)
	tags, err := s.tagRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to verify tags: %w", err)
	}
	if len(tags) != len(ids) {
		return nil, ErrInvalidTag
	}
	return tags, nil
}

func uniqueUint64(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
