package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/idubina/it-company-task-manager/internal/database"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/testutil"
)

func TestDashboard_Counts(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.SetDB(db)

	require.NoError(t, db.Create(&models.Team{Name: "Core"}).Error)
	require.NoError(t, db.Create(&models.Worker{Username: "alice", PasswordHash: "hashed"}).Error)
	project := &models.Project{Name: "Platform"}
	require.NoError(t, db.Create(project).Error)
	require.NoError(t, db.Create(&models.Task{Name: "First", ProjectID: project.ID}).Error)
	require.NoError(t, db.Create(&models.Task{Name: "Second", ProjectID: project.ID}).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api", Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var counts map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, int64(1), counts["num_teams"])
	assert.Equal(t, int64(1), counts["num_workers"])
	assert.Equal(t, int64(0), counts["num_positions"])
	assert.Equal(t, int64(1), counts["num_projects"])
	assert.Equal(t, int64(2), counts["num_tasks"])
}
