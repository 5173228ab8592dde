package database

import (
	"gorm.io/gorm"

	"github.com/idubina/it-company-task-manager/internal/utils"
)

// PaginateClamped applies offset/limit for a page already clamped against the
// total row count.
func PaginateClamped(page int, total int64, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page = utils.ClampPage(page, total, pageSize)
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
