package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me handles GET /api/me, echoing the verified identity.
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uid":   c.GetString("uid"),
		"email": c.GetString("email"),
	})
}
