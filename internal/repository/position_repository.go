package repository

import (
	"errors"
	"strings"

	"github.com/idubina/it-company-task-manager/internal/database"
	"github.com/idubina/it-company-task-manager/internal/models"
	"gorm.io/gorm"
)

// ErrPositionHeld is returned when deleting a position that workers still
// reference.
var ErrPositionHeld = errors.New("position repository: position still referenced by workers")

// GormPositionRepository is a GORM implementation of PositionRepository
type GormPositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new PositionRepository
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &GormPositionRepository{db: db}
}

// Create creates a new position
func (r *GormPositionRepository) Create(position *models.Position) error {
	return r.db.Create(position).Error
}

// FindByID finds a position by ID with optional preloading
func (r *GormPositionRepository) FindByID(id uint64, preload ...string) (*models.Position, error) {
	var position models.Position
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&position, id).Error; err != nil {
		return nil, err
	}

	return &position, nil
}

// FindByName finds a position by its unique name
func (r *GormPositionRepository) FindByName(name string) (*models.Position, error) {
	var position models.Position
	if err := r.db.Where("name = ?", name).First(&position).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

// List retrieves positions filtered by name substring, ordered by name
func (r *GormPositionRepository) List(filter NameFilter) ([]models.Position, int64, error) {
	query := r.db.Model(&models.Position{})
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var positions []models.Position
	err := query.Order("name").
		Scopes(database.PaginateClamped(filter.Page, total, filter.PageSize)).
		Find(&positions).Error
	if err != nil {
		return nil, 0, err
	}

	return positions, total, nil
}

// Delete removes a position. The delete is protective: it fails with
// ErrPositionHeld while any worker references the position.
func (r *GormPositionRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var held int64
		if err := tx.Model(&models.Worker{}).Where("position_id = ?", id).
			Count(&held).Error; err != nil {
			return err
		}
		if held > 0 {
			return ErrPositionHeld
		}

		return tx.Delete(&models.Position{}, id).Error
	})
}

// Count returns the total number of positions
func (r *GormPositionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Position{}).Count(&count).Error
	return count, err
}
