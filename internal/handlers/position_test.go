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

// PositionHandlerTestSuite defines the test suite for PositionHandler
type PositionHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *PositionHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *PositionHandlerTestSuite) SetupTest() {
	db, err := testutil.NewInMemoryDB()
	suite.Require().NoError(err)
	suite.db = db

	database.SetDB(db)

	suite.handler = NewPositionHandler(services.NewPositionService(repository.NewPositionRepository(db)))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/positions", suite.handler.ListPositions)
	suite.router.POST("/api/positions", suite.handler.CreatePosition)
	suite.router.GET("/api/positions/:id", suite.handler.GetPosition)
	suite.router.DELETE("/api/positions/:id", suite.handler.DeletePosition)
}

// TearDownTest runs after each test
func (suite *PositionHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *PositionHandlerTestSuite) createPosition(name string) *models.Position {
	position := &models.Position{Name: name}
	suite.Require().NoError(suite.db.Create(position).Error)
	return position
}

// TestCreatePosition tests creation and the duplicate-name conflict
func (suite *PositionHandlerTestSuite) TestCreatePosition() {
	body, err := json.Marshal(map[string]string{"name": "QA Engineer"})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/positions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusCreated, w.Code)

	// Same name again conflicts
	req = httptest.NewRequest(http.MethodPost, "/api/positions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestGetPosition_Workers tests the detail view listing the position's holders
func (suite *PositionHandlerTestSuite) TestGetPosition_Workers() {
	position := suite.createPosition("Developer")
	for _, username := range []string{"zoe", "adam"} {
		worker := &models.Worker{Username: username, PasswordHash: "hashed", PositionID: &position.ID}
		suite.Require().NoError(suite.db.Create(worker).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/positions/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.PositionDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Developer", response.Position.Name)
	suite.Require().Len(response.Workers, 2)
	assert.Equal(suite.T(), "adam", response.Workers[0].Username)
	assert.Equal(suite.T(), "zoe", response.Workers[1].Username)
}

// TestDeletePosition_Held verifies a position with workers cannot be removed
func (suite *PositionHandlerTestSuite) TestDeletePosition_Held() {
	position := suite.createPosition("Developer")
	worker := &models.Worker{Username: "holder", PasswordHash: "hashed", PositionID: &position.ID}
	suite.Require().NoError(suite.db.Create(worker).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/positions/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var count int64
	suite.db.Model(&models.Position{}).Where("id = ?", position.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestDeletePosition_Unheld verifies an unreferenced position is removed
func (suite *PositionHandlerTestSuite) TestDeletePosition_Unheld() {
	position := suite.createPosition("Obsolete")

	req := httptest.NewRequest(http.MethodDelete, "/api/positions/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	var count int64
	suite.db.Model(&models.Position{}).Where("id = ?", position.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestDeletePosition_NotFound tests deletion of an unknown position
func (suite *PositionHandlerTestSuite) TestDeletePosition_NotFound() {
	req := httptest.NewRequest(http.MethodDelete, "/api/positions/999", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestPositionHandlerTestSuite runs the test suite
func TestPositionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PositionHandlerTestSuite))
}
