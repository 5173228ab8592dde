package dto

import (
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskTypeDTO represents a task type in API responses
type TaskTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TagListResponse represents a paginated, filtered tag list
type TagListResponse struct {
	Tags       []TagDTO       `json:"tags"`
	Pagination utils.PageMeta `json:"pagination"`
	Query      string         `json:"query"`
}

// TaskTypeListResponse represents a paginated, filtered task type list
type TaskTypeListResponse struct {
	TaskTypes  []TaskTypeDTO  `json:"task_types"`
	Pagination utils.PageMeta `json:"pagination"`
	Query      string         `json:"query"`
}

// TagDrilldownResponse lists the tasks carrying one tag, searchable and
// paginated like the main task list
type TagDrilldownResponse struct {
	Tag TagDTO `json:"tag"`
	TaskListResponse
}

// TaskTypeDrilldownResponse lists the tasks of one type
type TaskTypeDrilldownResponse struct {
	TaskType TaskTypeDTO `json:"task_type"`
	TaskListResponse
}

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// ToTaskTypeDTO converts a TaskType model to TaskTypeDTO
func ToTaskTypeDTO(taskType models.TaskType) TaskTypeDTO {
	return TaskTypeDTO{
		ID:   taskType.ID,
		Name: taskType.Name,
	}
}

// ToTagListResponse builds the tag list envelope
func ToTagListResponse(tags []models.Tag, page int, pageSize int, total int64, query string) TagListResponse {
	dtos := make([]TagDTO, len(tags))
	for i, tag := range tags {
		dtos[i] = ToTagDTO(tag)
	}

	return TagListResponse{
		Tags:       dtos,
		Pagination: utils.NewPageMeta(page, pageSize, total),
		Query:      query,
	}
}

// ToTaskTypeListResponse builds the task type list envelope
func ToTaskTypeListResponse(taskTypes []models.TaskType, page int, pageSize int, total int64, query string) TaskTypeListResponse {
	dtos := make([]TaskTypeDTO, len(taskTypes))
	for i, taskType := range taskTypes {
		dtos[i] = ToTaskTypeDTO(taskType)
	}

	return TaskTypeListResponse{
		TaskTypes:  dtos,
		Pagination: utils.NewPageMeta(page, pageSize, total),
		Query:      query,
	}
}
