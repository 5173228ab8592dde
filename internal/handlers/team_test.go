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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TeamHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *TeamHandlerTestSuite) SetupTest() {
	db, err := testutil.NewInMemoryDB()
	suite.Require().NoError(err)
	suite.db = db

	database.SetDB(db)

	suite.handler = NewTeamHandler(services.NewTeamService(
		repository.NewTeamRepository(db),
		repository.NewWorkerRepository(db),
	))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/teams", suite.handler.ListTeams)
	suite.router.POST("/api/teams", suite.handler.CreateTeam)
	suite.router.GET("/api/teams/:id", suite.handler.GetTeam)
	suite.router.DELETE("/api/teams/:id", suite.handler.DeleteTeam)
}

// TearDownTest runs after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TeamHandlerTestSuite) createWorker(username string) *models.Worker {
	worker := &models.Worker{Username: username, PasswordHash: "hashed"}
	suite.Require().NoError(suite.db.Create(worker).Error)
	return worker
}

func (suite *TeamHandlerTestSuite) postJSON(url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateTeam_WithMembers tests creation with the member multi-select
func (suite *TeamHandlerTestSuite) TestCreateTeam_WithMembers() {
	alice := suite.createWorker("alice")
	bob := suite.createWorker("bob")

	w := suite.postJSON("/api/teams", map[string]interface{}{
		"name":       "Core",
		"member_ids": []uint64{alice.ID, bob.ID},
	})

	suite.Require().Equal(http.StatusCreated, w.Code)

	var response dto.TeamDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Core", response.Name)
	assert.Len(suite.T(), response.Members, 2)
}

// TestCreateTeam_UnknownMember tests the member existence check
func (suite *TeamHandlerTestSuite) TestCreateTeam_UnknownMember() {
	w := suite.postJSON("/api/teams", map[string]interface{}{
		"name":       "Core",
		"member_ids": []uint64{999},
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetTeam_SortedMembersAndProjects tests the detail view ordering
func (suite *TeamHandlerTestSuite) TestGetTeam_SortedMembersAndProjects() {
	zoe := suite.createWorker("zoe")
	adam := suite.createWorker("adam")
	team := &models.Team{Name: "Core", Members: []models.Worker{*zoe, *adam}}
	suite.Require().NoError(suite.db.Create(team).Error)

	for _, name := range []string{"Zeta", "Alpha"} {
		project := &models.Project{Name: name, TeamID: &team.ID}
		suite.Require().NoError(suite.db.Create(project).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/teams/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.TeamDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Core", response.Team.Name)
	suite.Require().Len(response.Members, 2)
	assert.Equal(suite.T(), "adam", response.Members[0].Username)
	assert.Equal(suite.T(), "zoe", response.Members[1].Username)
	suite.Require().Len(response.Projects, 2)
	assert.Equal(suite.T(), "Alpha", response.Projects[0].Name)
	assert.Equal(suite.T(), "Zeta", response.Projects[1].Name)
}

// TestDeleteTeam_DetachesProjects verifies projects survive without their team
func (suite *TeamHandlerTestSuite) TestDeleteTeam_DetachesProjects() {
	member := suite.createWorker("member")
	team := &models.Team{Name: "Disbanded", Members: []models.Worker{*member}}
	suite.Require().NoError(suite.db.Create(team).Error)

	project := &models.Project{Name: "Keeps going", TeamID: &team.ID}
	suite.Require().NoError(suite.db.Create(project).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/teams/1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	var stored models.Project
	suite.Require().NoError(suite.db.First(&stored, project.ID).Error)
	assert.Nil(suite.T(), stored.TeamID)

	var count int64
	suite.db.Table("team_members").Where("team_id = ?", team.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
