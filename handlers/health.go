package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyretail/utils"
)

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
