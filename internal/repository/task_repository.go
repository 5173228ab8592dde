package repository

import (
	"strings"

	"github.com/idubina/it-company-task-manager/internal/database"
	"github.com/idubina/it-company-task-manager/internal/models"
	"gorm.io/gorm"
)

// Relevance tiers for text search: name beats type beats tag. Tier 4 is only
// reachable for rows that pass without a text predicate.
const taskRankExpr = "CASE" +
	" WHEN LOWER(tasks.name) LIKE ? THEN 1" +
	" WHEN LOWER(task_types.name) LIKE ? THEN 2" +
	" WHEN LOWER(tags.name) LIKE ? THEN 3" +
	" ELSE 4 END"

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// narrowScope applies the drill-down restrictions that come before any text
// predicate: a single tag, task type, project or assignee, plus completion.
func (r *GormTaskRepository) narrowScope(filter TaskSearchFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.TagID != nil {
			db = db.Where("tasks.id IN (?)",
				r.db.Table("task_tags").Select("task_id").Where("tag_id = ?", *filter.TagID))
		}
		if filter.TaskTypeID != nil {
			db = db.Where("tasks.task_type_id = ?", *filter.TaskTypeID)
		}
		if filter.ProjectID != nil {
			db = db.Where("tasks.project_id = ?", *filter.ProjectID)
		}
		if filter.AssigneeID != nil {
			db = db.Where("tasks.id IN (?)",
				r.db.Table("task_assignees").Select("task_id").Where("worker_id = ?", *filter.AssigneeID))
		}
		if filter.Completed != nil {
			db = db.Where("tasks.is_completed = ?", *filter.Completed)
		}
		return db
	}
}

// textScope joins the rank-relevant relations and applies the disjunctive
// substring predicate over task name, type name and tag name. The joins fan
// rows out per matching tag; callers collapse them back per task.
func textScope(pattern string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN task_types ON task_types.id = tasks.task_type_id").
			Joins("LEFT JOIN task_tags ON task_tags.task_id = tasks.id").
			Joins("LEFT JOIN tags ON tags.id = task_tags.tag_id").
			Where("LOWER(tasks.name) LIKE ? OR LOWER(task_types.name) LIKE ? OR LOWER(tags.name) LIKE ?",
				pattern, pattern, pattern)
	}
}

// Search retrieves tasks matching the filter with relevance ranking and
// pagination. See TaskRepository.Search.
func (r *GormTaskRepository) Search(filter TaskSearchFilter) ([]models.Task, int64, error) {
	query := strings.TrimSpace(filter.Query)

	if query == "" {
		return r.searchPlain(filter)
	}
	return r.searchRanked(filter, "%"+strings.ToLower(query)+"%")
}

// searchPlain lists without a text predicate: every narrowed row passes,
// ordered by name, no rank computed.
func (r *GormTaskRepository) searchPlain(filter TaskSearchFilter) ([]models.Task, int64, error) {
	var total int64
	if err := r.db.Model(&models.Task{}).
		Scopes(r.narrowScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	err := r.db.Model(&models.Task{}).
		Scopes(r.narrowScope(filter)).
		Order("tasks.name").
		Scopes(database.PaginateClamped(filter.Page, total, filter.PageSize)).
		Preload("TaskType").
		Preload("Project").
		Preload("Tags").
		Preload("Assignees").
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// searchRanked applies the disjunctive predicate and orders by relevance tier
// then name. A task reachable through several matching tags is collapsed to a
// single row carrying its best tier.
func (r *GormTaskRepository) searchRanked(filter TaskSearchFilter, pattern string) ([]models.Task, int64, error) {
	var total int64
	if err := r.db.Model(&models.Task{}).
		Scopes(r.narrowScope(filter), textScope(pattern)).
		Distinct("tasks.id").
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	err := r.db.Model(&models.Task{}).
		Scopes(r.narrowScope(filter), textScope(pattern)).
		Select("tasks.*, MIN("+taskRankExpr+") AS search_rank", pattern, pattern, pattern).
		Group("tasks.id").
		Order("search_rank, tasks.name").
		Scopes(database.PaginateClamped(filter.Page, total, filter.PageSize)).
		Preload("TaskType").
		Preload("Project").
		Preload("Tags").
		Preload("Assignees").
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ListByWorker lists a worker's assigned tasks by completion state, ordered by name
func (r *GormTaskRepository) ListByWorker(workerID uint64, completed bool) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Joins("JOIN task_assignees ON task_assignees.task_id = tasks.id").
		Where("task_assignees.worker_id = ? AND tasks.is_completed = ?", workerID, completed).
		Order("tasks.name").
		Preload("TaskType").
		Preload("Project").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByProject lists a project's tasks by completion state, ordered by name
func (r *GormTaskRepository) ListByProject(projectID uint64, completed bool) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("tasks.project_id = ? AND tasks.is_completed = ?", projectID, completed).
		Order("tasks.name").
		Preload("TaskType").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// SetAssignees replaces the task's assignee set
func (r *GormTaskRepository) SetAssignees(task *models.Task, workers []models.Worker) error {
	return r.db.Model(task).Association("Assignees").Replace(&workers)
}

// SetTags replaces the task's tag set
func (r *GormTaskRepository) SetTags(task *models.Task, tags []models.Tag) error {
	return r.db.Model(task).Association("Tags").Replace(&tags)
}

// Delete removes a task and its join rows
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_assignees WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

// Count returns the total number of tasks
func (r *GormTaskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}
