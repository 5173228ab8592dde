package models

import "time"

type TaskPriority string

const (
	PriorityUrgent TaskPriority = "URGENT"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityLow    TaskPriority = "LOW"
)

// ValidPriority reports whether p is one of the four known priorities.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	DeadlineAt  *time.Time   `json:"deadline_at"`
	IsCompleted bool         `gorm:"not null;default:false" json:"is_completed"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'MEDIUM'" json:"priority"`
	ProjectID   uint64       `gorm:"not null" json:"project_id"`
	TaskTypeID  *uint64      `json:"task_type_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	Project   Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	TaskType  *TaskType `gorm:"foreignKey:TaskTypeID" json:"task_type,omitempty"`
	Assignees []Worker  `gorm:"many2many:task_assignees" json:"assignees,omitempty"`
	Tags      []Tag     `gorm:"many2many:task_tags" json:"tags,omitempty"`
}
