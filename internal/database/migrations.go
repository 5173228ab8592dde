package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds indexes the list queries lean on beyond what AutoMigrate
// creates for the unique name columns.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task search joins and orderings
		{"tasks", "idx_tasks_name", "name"},
		{"tasks", "idx_tasks_project_id", "project_id"},
		{"tasks", "idx_tasks_task_type_id", "task_type_id"},
		{"tasks", "idx_tasks_is_completed", "is_completed"},

		// Worker lookups
		{"workers", "idx_workers_position_id", "position_id"},

		// Project ownership
		{"projects", "idx_projects_team_id", "team_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
