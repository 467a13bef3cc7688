package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotbook/utils"
)

// Health handles GET /health with the latest dependency snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
