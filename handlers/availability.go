package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"slotbook/models"
	"slotbook/services/provider"
)

type createSlotRequest struct {
	ProviderID string    `json:"providerId" binding:"required"`
	SlotStart  time.Time `json:"slotStart" binding:"required"`
	SlotEnd    time.Time `json:"slotEnd" binding:"required"`
}

// CreateSlot handles POST /api/availability.
func (h *ProviderHandler) CreateSlot(c *gin.Context) {
	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), req.ProviderID, req.SlotStart, req.SlotEnd)
	if err != nil {
		if errors.Is(err, provider.ErrInvalidInterval) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "slot could not be created, please retry"})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListSlots handles GET /api/availability/:providerId.
func (h *ProviderHandler) ListSlots(c *gin.Context) {
	slots, err := h.Service.ListSlots(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "slots could not be loaded, please retry"})
		return
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	c.JSON(http.StatusOK, slots)
}
