package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"licenza/internal/shared/utils"
)

// parseIDParam reads the :id path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
