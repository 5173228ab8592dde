package repository

import (
	"github.com/idubina/it-company-task-manager/internal/models"
)

// NameFilter narrows a single-field list by a case-insensitive substring of
// the entity's name (username for workers). An empty or whitespace-only query
// matches everything.
type NameFilter struct {
	Query    string
	Page     int
	PageSize int
}

// TaskSearchFilter holds the task search context: an optional free-text query
// plus optional drill-down narrowings applied before the text predicate.
type TaskSearchFilter struct {
	Query      string
	TagID      *uint64
	TaskTypeID *uint64
	ProjectID  *uint64
	AssigneeID *uint64
	Completed  *bool
	Page       int
	PageSize   int
}

// WorkerRepository defines the interface for worker data access
type WorkerRepository interface {
	// Create creates a new worker
	Create(worker *models.Worker) error

	// FindByID finds a worker by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Worker, error)

	// FindByUsername finds a worker by username
	FindByUsername(username string) (*models.Worker, error)

	// FindByIDs returns the workers whose IDs are in ids
	FindByIDs(ids []uint64) ([]models.Worker, error)

	// List retrieves workers filtered by username substring, ordered by ID
	List(filter NameFilter) ([]models.Worker, int64, error)

	// Delete removes a worker together with its assignments and memberships
	Delete(id uint64) error

	// Count returns the total number of workers
	Count() (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// Search retrieves one page of tasks matching the filter, relevance-ranked
	// when a text query is present, deduplicated, with display relations
	// preloaded. Returns the page and the total match count.
	Search(filter TaskSearchFilter) ([]models.Task, int64, error)

	// ListByWorker lists a worker's assigned tasks by completion state, ordered by name
	ListByWorker(workerID uint64, completed bool) ([]models.Task, error)

	// ListByProject lists a project's tasks by completion state, ordered by name
	ListByProject(projectID uint64, completed bool) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// SetAssignees replaces the task's assignee set
	SetAssignees(task *models.Task, workers []models.Worker) error

	// SetTags replaces the task's tag set
	SetTags(task *models.Task, tags []models.Tag) error

	// Delete removes a task and its join rows
	Delete(id uint64) error

	// Count returns the total number of tasks
	Count() (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64, preload ...string) (*models.Project, error)
	FindByName(name string) (*models.Project, error)
	List(filter NameFilter) ([]models.Project, int64, error)

	// Delete removes a project and cascades to its tasks
	Delete(id uint64) error
	Count() (int64, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id uint64, preload ...string) (*models.Team, error)
	FindByName(name string) (*models.Team, error)
	List(filter NameFilter) ([]models.Team, int64, error)

	// Delete removes a team, detaching its projects and members
	Delete(id uint64) error
	Count() (int64, error)
}

// PositionRepository defines the interface for position data access
type PositionRepository interface {
	Create(position *models.Position) error
	FindByID(id uint64, preload ...string) (*models.Position, error)
	FindByName(name string) (*models.Position, error)
	List(filter NameFilter) ([]models.Position, int64, error)

	// Delete removes a position; fails with ErrPositionHeld while any worker
	// still references it.
	Delete(id uint64) error
	Count() (int64, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(tag *models.Tag) error
	FindByID(id uint64) (*models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	FindByIDs(ids []uint64) ([]models.Tag, error)
	List(filter NameFilter) ([]models.Tag, int64, error)
	Delete(id uint64) error
}

// TaskTypeRepository defines the interface for task type data access
type TaskTypeRepository interface {
	Create(taskType *models.TaskType) error
	FindByID(id uint64) (*models.TaskType, error)
	FindByName(name string) (*models.TaskType, error)
	List(filter NameFilter) ([]models.TaskType, int64, error)

	// Delete removes a task type; referencing tasks keep running with the
	// field nulled.
	Delete(id uint64) error
}
