package models

import "time"

// Worker is both a tracked employee and the authenticated user.
type Worker struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	FirstName    string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(150)" json:"last_name"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	PositionID   *uint64   `json:"position_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Position *Position `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Teams    []Team    `gorm:"many2many:team_members" json:"teams,omitempty"`
	Tasks    []Task    `gorm:"many2many:task_assignees" json:"tasks,omitempty"`
}
