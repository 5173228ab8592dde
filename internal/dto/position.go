package dto

import (
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/utils"
)

// PositionDTO represents a position in API responses
type PositionDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PositionListResponse represents a paginated, filtered position list
type PositionListResponse struct {
	Positions  []PositionDTO  `json:"positions"`
	Pagination utils.PageMeta `json:"pagination"`
	Query      string         `json:"query"`
}

// PositionDetailResponse is the position detail view with its workers
type PositionDetailResponse struct {
	Position PositionDTO `json:"position"`
	Workers  []WorkerDTO `json:"workers"`
}

// ToPositionDTO converts a Position model to PositionDTO
func ToPositionDTO(position models.Position) PositionDTO {
	return PositionDTO{
		ID:   position.ID,
		Name: position.Name,
	}
}

// ToPositionListResponse builds the position list envelope
func ToPositionListResponse(positions []models.Position, page int, pageSize int, total int64, query string) PositionListResponse {
	dtos := make([]PositionDTO, len(positions))
	for i, position := range positions {
		dtos[i] = ToPositionDTO(position)
	}

	return PositionListResponse{
		Positions:  dtos,
		Pagination: utils.NewPageMeta(page, pageSize, total),
		Query:      query,
	}
}
