package dto

import (
	"time"

	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// TaskDTO represents a task in detail responses
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	DeadlineAt  *time.Time          `json:"deadline_at"`
	IsCompleted bool                `json:"is_completed"`
	Priority    models.TaskPriority `json:"priority"`
	Project     *ProjectDTO         `json:"project,omitempty"`
	TaskType    *TaskTypeDTO        `json:"task_type,omitempty"`
	Tags        []TagDTO            `json:"tags,omitempty"`
	Assignees   []WorkerDTO         `json:"assignees,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TaskListItemDTO represents a task in list responses (minimal data)
type TaskListItemDTO struct {
	ID          uint64              `json:"id"`
	Name        string              `json:"name"`
	DeadlineAt  *time.Time          `json:"deadline_at"`
	IsCompleted bool                `json:"is_completed"`
	Priority    models.TaskPriority `json:"priority"`
	Project     *ProjectDTO         `json:"project,omitempty"`
	TaskType    *TaskTypeDTO        `json:"task_type,omitempty"`
	Tags        []TagDTO            `json:"tags,omitempty"`
}

// TaskListResponse represents a paginated, ranked task list
type TaskListResponse struct {
	Tasks      []TaskListItemDTO `json:"tasks"`
	Pagination utils.PageMeta    `json:"pagination"`
	Query      string            `json:"query"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		DeadlineAt:  task.DeadlineAt,
		IsCompleted: task.IsCompleted,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include relations that were preloaded
	if task.Project.ID != 0 {
		project := ToProjectDTO(task.Project)
		dto.Project = &project
	}
	if task.TaskType != nil {
		taskType := ToTaskTypeDTO(*task.TaskType)
		dto.TaskType = &taskType
	}
	if len(task.Tags) > 0 {
		dto.Tags = make([]TagDTO, len(task.Tags))
		for i, tag := range task.Tags {
			dto.Tags[i] = ToTagDTO(tag)
		}
	}
	if len(task.Assignees) > 0 {
		dto.Assignees = ToWorkerDTOs(task.Assignees)
	}

	return dto
}

// ToTaskListItemDTO converts a Task model to TaskListItemDTO
func ToTaskListItemDTO(task models.Task) TaskListItemDTO {
	dto := TaskListItemDTO{
		ID:          task.ID,
		Name:        task.Name,
		DeadlineAt:  task.DeadlineAt,
		IsCompleted: task.IsCompleted,
		Priority:    task.Priority,
	}

	if task.Project.ID != 0 {
		project := ToProjectDTO(task.Project)
		dto.Project = &project
	}
	if task.TaskType != nil {
		taskType := ToTaskTypeDTO(*task.TaskType)
		dto.TaskType = &taskType
	}
	if len(task.Tags) > 0 {
		dto.Tags = make([]TagDTO, len(task.Tags))
		for i, tag := range task.Tags {
			dto.Tags[i] = ToTagDTO(tag)
		}
	}

	return dto
}

// ToTaskListItemDTOs converts a slice of tasks
func ToTaskListItemDTOs(tasks []models.Task) []TaskListItemDTO {
	items := make([]TaskListItemDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskListItemDTO(task)
	}
	return items
}

// ToTaskListResponse builds the task list envelope
func ToTaskListResponse(tasks []models.Task, page int, pageSize int, total int64, query string) TaskListResponse {
	return TaskListResponse{
		Tasks:      ToTaskListItemDTOs(tasks),
		Pagination: utils.NewPageMeta(page, pageSize, total),
		Query:      query,
	}
}
