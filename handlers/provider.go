package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotbook/models"
	"slotbook/services/provider"
)

// ProviderHandler exposes provider and availability management.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

type createProviderRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// CreateProvider handles POST /api/providers.
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req createProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateProvider(c.Request.Context(), req.DisplayName, req.Email)
	if err != nil {
		if errors.Is(err, provider.ErrDisplayNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "provider could not be created, please retry"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProviders handles GET /api/providers.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.Service.ListProviders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "providers could not be loaded, please retry"})
		return
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, providers)
}
