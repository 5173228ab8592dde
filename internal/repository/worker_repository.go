package repository

import (
	"strings"

	"github.com/idubina/it-company-task-manager/internal/database"
	"github.com/idubina/it-company-task-manager/internal/models"
	"gorm.io/gorm"
)

// GormWorkerRepository is a GORM implementation of WorkerRepository
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new WorkerRepository
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Create creates a new worker
func (r *GormWorkerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

// FindByID finds a worker by ID with optional preloading
func (r *GormWorkerRepository) FindByID(id uint64, preload ...string) (*models.Worker, error) {
	var worker models.Worker
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&worker, id).Error; err != nil {
		return nil, err
	}

	return &worker, nil
}

// FindByUsername finds a worker by username
func (r *GormWorkerRepository) FindByUsername(username string) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.Where("username = ?", username).First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

// FindByIDs returns the workers whose IDs are in ids
func (r *GormWorkerRepository) FindByIDs(ids []uint64) ([]models.Worker, error) {
	var workers []models.Worker
	if len(ids) == 0 {
		return workers, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

// List retrieves workers filtered by username substring, ordered by ID
func (r *GormWorkerRepository) List(filter NameFilter) ([]models.Worker, int64, error) {
	query := r.db.Model(&models.Worker{})
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workers []models.Worker
	err := query.Order("id").
		Scopes(database.PaginateClamped(filter.Page, total, filter.PageSize)).
		Preload("Position").
		Find(&workers).Error
	if err != nil {
		return nil, 0, err
	}

	return workers, total, nil
}

// Delete removes a worker together with its assignments and memberships
func (r *GormWorkerRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_assignees WHERE worker_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM team_members WHERE worker_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Worker{}, id).Error
	})
}

// Count returns the total number of workers
func (r *GormWorkerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Worker{}).Count(&count).Error
	return count, err
}
