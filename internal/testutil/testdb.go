package testutil

import (
	"github.com/glebarez/sqlite"
	"github.com/idubina/it-company-task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewInMemoryDB creates an in-memory SQLite DB and runs migrations.
func NewInMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.Position{},
		&models.Worker{},
		&models.Team{},
		&models.Project{},
		&models.TaskType{},
		&models.Tag{},
		&models.Task{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
