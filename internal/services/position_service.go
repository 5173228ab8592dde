package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPositionNameRequired = errors.New("position name is required")
	ErrPositionNameTooLong  = errors.New("position name too long")
	ErrPositionNameTaken    = errors.New("position name already exists")
	ErrPositionInUse        = errors.New("position is still assigned to workers")
)

// PositionService handles position business logic.
type PositionService struct {
	posRepo repository.PositionRepository
}

// NewPositionService creates a new PositionService.
func NewPositionService(posRepo repository.PositionRepository) *PositionService {
	return &PositionService{
		posRepo: posRepo,
	}
}

// CreatePosition validates the name and creates the position.
func (s *PositionService) CreatePosition(name string) (*models.Position, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPositionNameRequired
	}
	if len(name) > constants.MaxNameLength {
		return nil, ErrPositionNameTooLong
	}

	if _, err := s.posRepo.FindByName(name); err == nil {
		return nil, ErrPositionNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check position name: %w", err)
	}

	position := &models.Position{Name: name}
	if err := s.posRepo.Create(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	return position, nil
}

// ListPositions returns one page of positions filtered by name substring.
func (s *PositionService) ListPositions(query string, page int) ([]models.Position, int64, error) {
	positions, total, err := s.posRepo.List(repository.NameFilter{
		Query:    query,
		Page:     page,
		PageSize: constants.ListPageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list positions: %w", err)
	}

	return positions, total, nil
}

// GetPosition resolves the position detail view with its workers ordered by
// username.
func (s *PositionService) GetPosition(id uint64) (*models.Position, error) {
	position, err := s.posRepo.FindByID(id, "Workers")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to find position: %w", err)
	}

	sort.Slice(position.Workers, func(i, j int) bool {
		return position.Workers[i].Username < position.Workers[j].Username
	})

	return position, nil
}

// DeletePosition removes a position unless workers still hold it.
func (s *PositionService) DeletePosition(id uint64) error {
	if _, err := s.posRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPositionNotFound
		}
		return fmt.Errorf("failed to find position: %w", err)
	}

	if err := s.posRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrPositionHeld) {
			return ErrPositionInUse
		}
		return fmt.Errorf("failed to delete position: %w", err)
	}

	return nil
}
