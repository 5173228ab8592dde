package dto

import (
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// WorkerDTO represents a worker in API responses
type WorkerDTO struct {
	ID        uint64       `json:"id"`
	Username  string       `json:"username"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Position  *PositionDTO `json:"position,omitempty"`
}

// WorkerListResponse represents a paginated, filtered worker list
type WorkerListResponse struct {
	Workers    []WorkerDTO    `json:"workers"`
	Pagination utils.PageMeta `json:"pagination"`
	Query      string         `json:"query"`
}

// WorkerDetailResponse is the worker detail view with the task breakdown
type WorkerDetailResponse struct {
	Worker          WorkerDTO         `json:"worker"`
	Teams           []TeamDTO         `json:"teams"`
	TasksInProgress []TaskListItemDTO `json:"tasks_in_progress"`
	TasksCompleted  []TaskListItemDTO `json:"tasks_completed"`
}

// ToWorkerDTO converts a Worker model to WorkerDTO
func ToWorkerDTO(worker models.Worker) WorkerDTO {
	dto := WorkerDTO{
		ID:        worker.ID,
		Username:  worker.Username,
		FirstName: worker.FirstName,
		LastName:  worker.LastName,
	}

	if worker.Position != nil {
		position := ToPositionDTO(*worker.Position)
		dto.Position = &position
	}

	return dto
}

// ToWorkerDTOs converts a slice of workers
func ToWorkerDTOs(workers []models.Worker) []WorkerDTO {
	dtos := make([]WorkerDTO, len(workers))
	for i, worker := range workers {
		dtos[i] = ToWorkerDTO(worker)
	}
	return dtos
}

// ToWorkerListResponse builds the worker list envelope
func ToWorkerListResponse(workers []models.Worker, page int, pageSize int, total int64, query string) WorkerListResponse {
	return WorkerListResponse{
		Workers:    ToWorkerDTOs(workers),
		Pagination: utils.NewPageMeta(page, pageSize, total),
		Query:      query,
	}
}
