package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/idubina/it-company-task-manager/internal/database"
	apierrors "github.com/idubina/it-company-task-manager/internal/errors"
	"github.com/idubina/it-company-task-manager/internal/models"
)

// Dashboard returns the entity counts shown on the landing page.
func Dashboard(c *gin.Context) {
	db := database.GetDB()

	counts := map[string]interface{}{}
	for name, model := range map[string]interface{}{
		"num_teams":     &models.Team{},
		"num_workers":   &models.Worker{},
		"num_positions": &models.Position{},
		"num_projects":  &models.Project{},
		"num_tasks":     &models.Task{},
	} {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			apierrors.InternalError(c, "Failed to count entities")
			return
		}
		counts[name] = count
	}

	c.JSON(http.StatusOK, counts)
}
