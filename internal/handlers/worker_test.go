package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/idubina/it-company-task-manager/internal/database"
	"github.com/idubina/it-company-task-manager/internal/dto"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"github.com/idubina/it-company-task-manager/internal/services"
	"github.com/idubina/it-company-task-manager/internal/testutil"
	"gorm.io/gorm"
)

// WorkerHandlerTestSuite defines the test suite for WorkerHandler
type WorkerHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *WorkerHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *WorkerHandlerTestSuite) SetupTest() {
	db, err := testutil.NewInMemoryDB()
	suite.Require().NoError(err)
	suite.db = db

	database.SetDB(db)

	workerRepo := repository.NewWorkerRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	suite.handler = NewWorkerHandler(services.NewWorkerService(workerRepo, positionRepo, taskRepo))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/workers", suite.handler.ListWorkers)
	suite.router.POST("/api/workers", suite.handler.CreateWorker)
	suite.router.GET("/api/workers/:id", suite.handler.GetWorker)
	suite.router.DELETE("/api/workers/:id", suite.handler.DeleteWorker)
}

// TearDownTest runs after each test
func (suite *WorkerHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *WorkerHandlerTestSuite) createWorker(username string) *models.Worker {
	worker := &models.Worker{Username: username, PasswordHash: "hashed"}
	suite.Require().NoError(suite.db.Create(worker).Error)
	return worker
}

func (suite *WorkerHandlerTestSuite) postJSON(url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestListWorkers_FilterByUsername tests the username substring filter
func (suite *WorkerHandlerTestSuite) TestListWorkers_FilterByUsername() {
	suite.createWorker("alice.dev")
	suite.createWorker("bob.dev")
	suite.createWorker("carol.qa")

	req := httptest.NewRequest(http.MethodGet, "/api/workers?username=DEV", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.WorkerListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Workers, 2)
	assert.Equal(suite.T(), "alice.dev", response.Workers[0].Username)
	assert.Equal(suite.T(), "bob.dev", response.Workers[1].Username)
	assert.Equal(suite.T(), int64(2), response.Pagination.TotalCount)
}

// TestCreateWorker_Success tests registration with a position
func (suite *WorkerHandlerTestSuite) TestCreateWorker_Success() {
	position := &models.Position{Name: "Developer"}
	suite.Require().NoError(suite.db.Create(position).Error)

	w := suite.postJSON("/api/workers", map[string]interface{}{
		"username":    "newworker",
		"password":    "password123",
		"first_name":  "New",
		"last_name":   "Worker",
		"position_id": position.ID,
	})

	suite.Require().Equal(http.StatusCreated, w.Code)

	var response dto.WorkerDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "newworker", response.Username)
	suite.Require().NotNil(response.Position)
	assert.Equal(suite.T(), "Developer", response.Position.Name)

	// The raw password must never appear in the response
	assert.NotContains(suite.T(), w.Body.String(), "password123")
}

// TestCreateWorker_DuplicateUsername tests the uniqueness check
func (suite *WorkerHandlerTestSuite) TestCreateWorker_DuplicateUsername() {
	suite.createWorker("taken")

	w := suite.postJSON("/api/workers", map[string]interface{}{
		"username": "taken",
		"password": "password123",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestCreateWorker_ShortPassword tests the password length rule
func (suite *WorkerHandlerTestSuite) TestCreateWorker_ShortPassword() {
	w := suite.postJSON("/api/workers", map[string]interface{}{
		"username": "newworker",
		"password": "short",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateWorker_UnknownPosition tests the position existence check
func (suite *WorkerHandlerTestSuite) TestCreateWorker_UnknownPosition() {
	w := suite.postJSON("/api/workers", map[string]interface{}{
		"username":    "newworker",
		"password":    "password123",
		"position_id": 999,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetWorker_TaskBreakdown tests the detail view's in-progress/completed split
func (suite *WorkerHandlerTestSuite) TestGetWorker_TaskBreakdown() {
	worker := suite.createWorker("assignee")
	team := &models.Team{Name: "Core", Members: []models.Worker{*worker}}
	suite.Require().NoError(suite.db.Create(team).Error)

	project := &models.Project{Name: "Platform"}
	suite.Require().NoError(suite.db.Create(project).Error)

	open := &models.Task{Name: "Open task", ProjectID: project.ID, Assignees: []models.Worker{*worker}}
	suite.Require().NoError(suite.db.Create(open).Error)
	done := &models.Task{Name: "Done task", ProjectID: project.ID, IsCompleted: true, Assignees: []models.Worker{*worker}}
	suite.Require().NoError(suite.db.Create(done).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/workers/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.WorkerDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "assignee", response.Worker.Username)
	suite.Require().Len(response.Teams, 1)
	assert.Equal(suite.T(), "Core", response.Teams[0].Name)
	suite.Require().Len(response.TasksInProgress, 1)
	assert.Equal(suite.T(), "Open task", response.TasksInProgress[0].Name)
	suite.Require().Len(response.TasksCompleted, 1)
	assert.Equal(suite.T(), "Done task", response.TasksCompleted[0].Name)
}

// TestGetWorker_NotFound tests the detail route with an unknown ID
func (suite *WorkerHandlerTestSuite) TestGetWorker_NotFound() {
	req := httptest.NewRequest(http.MethodGet, "/api/workers/999", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteWorker tests deletion including membership and assignment rows
func (suite *WorkerHandlerTestSuite) TestDeleteWorker() {
	worker := suite.createWorker("leaving")
	team := &models.Team{Name: "Core", Members: []models.Worker{*worker}}
	suite.Require().NoError(suite.db.Create(team).Error)

	project := &models.Project{Name: "Platform"}
	suite.Require().NoError(suite.db.Create(project).Error)
	task := &models.Task{Name: "Orphaned task", ProjectID: project.ID, Assignees: []models.Worker{*worker}}
	suite.Require().NoError(suite.db.Create(task).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/workers/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	var count int64
	suite.db.Table("team_members").Where("worker_id = ?", worker.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	suite.db.Table("task_assignees").Where("worker_id = ?", worker.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	// The task itself survives, unassigned
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestWorkerHandlerTestSuite runs the test suite
func TestWorkerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerHandlerTestSuite))
}
