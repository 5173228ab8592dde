package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens a GORM connection backed by sqlmock so the generated SQL
// can be asserted without a database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// TestSearch_RankedSQLShape verifies a text query produces the joined,
// deduplicated ranking statement: one COUNT over distinct task IDs, then a
// grouped select ordered by rank tier and name.
func TestSearch_RankedSQLShape(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	pattern := "%backend%"

	mock.ExpectQuery(`SELECT COUNT\(.+\) FROM .tasks. `+
		`LEFT JOIN task_types ON task_types\.id = tasks\.task_type_id `+
		`LEFT JOIN task_tags ON task_tags\.task_id = tasks\.id `+
		`LEFT JOIN tags ON tags\.id = task_tags\.tag_id `+
		`WHERE LOWER\(tasks\.name\) LIKE \? OR LOWER\(task_types\.name\) LIKE \? OR LOWER\(tags\.name\) LIKE \?`).
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT tasks\.\*, MIN\(CASE WHEN LOWER\(tasks\.name\) LIKE \? THEN 1 `+
		`WHEN LOWER\(task_types\.name\) LIKE \? THEN 2 `+
		`WHEN LOWER\(tags\.name\) LIKE \? THEN 3 ELSE 4 END\) AS search_rank FROM .tasks. `+
		`LEFT JOIN task_types ON task_types\.id = tasks\.task_type_id `+
		`LEFT JOIN task_tags ON task_tags\.task_id = tasks\.id `+
		`LEFT JOIN tags ON tags\.id = task_tags\.tag_id `+
		`WHERE .+GROUP BY .tasks.\..id. ORDER BY search_rank, tasks\.name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	tasks, total, err := repo.Search(TaskSearchFilter{Query: "Backend", Page: 1, PageSize: 5})

	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSearch_PlainSQLShape verifies the no-query list skips the joins and
// ranking entirely and orders by name.
func TestSearch_PlainSQLShape(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .tasks.`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT .+ FROM .tasks. ORDER BY tasks\.name LIMIT \?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	tasks, total, err := repo.Search(TaskSearchFilter{Query: "   ", Page: 1, PageSize: 5})

	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSearch_NarrowedByTag verifies the drill-down restriction arrives as a
// subquery on the join table.
func TestSearch_NarrowedByTag(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	tagID := uint64(7)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .tasks. `+
		`WHERE tasks\.id IN \(SELECT .task_id. FROM .task_tags. WHERE tag_id = \?\)`).
		WithArgs(tagID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT .+ FROM .tasks. WHERE tasks\.id IN \(SELECT .task_id. FROM .task_tags. WHERE tag_id = \?\) ORDER BY tasks\.name`).
		WithArgs(tagID, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, _, err := repo.Search(TaskSearchFilter{TagID: &tagID, Page: 1, PageSize: 5})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestDelete_RemovesJoinRowsFirst verifies the delete runs in one transaction
// and clears both join tables before the task row.
func TestDelete_RemovesJoinRowsFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM task_assignees WHERE task_id = \?`).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM task_tags WHERE task_id = \?`).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM .tasks. WHERE .tasks.\..id. = \?`).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(42))
	assert.NoError(t, mock.ExpectationsWereMet())
}
