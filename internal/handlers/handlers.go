package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/idubina/it-company-task-manager/internal/errors"
)

// parseIDParam reads the :id route parameter. On failure it writes the 400
// response and returns false.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}
