package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotbook/models"
	"slotbook/services/booking"
)

// BookingHandler exposes the booking lifecycle engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

type createBookingRequest struct {
	ProviderID string    `json:"providerId" binding:"required"`
	SlotStart  time.Time `json:"slotStart" binding:"required"`
	SlotEnd    time.Time `json:"slotEnd" binding:"required"`
	// ClientUID is optional; when absent the verified token uid is used.
	ClientUID string `json:"clientUid"`
}

type updateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	uid := c.GetString("uid")

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !req.SlotEnd.After(req.SlotStart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slotEnd must be after slotStart"})
		return
	}

	clientUID := req.ClientUID
	if clientUID == "" {
		clientUID = uid
	}

	created, err := h.Service.Create(c.Request.Context(), clientUID, req.ProviderID, req.SlotStart, req.SlotEnd)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	h.Logger.Info("booking created",
		zap.String("bookingId", created.ID),
		zap.String("providerId", created.ProviderID))
	c.JSON(http.StatusCreated, created)
}

// UpdateBookingStatus handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	uid := c.GetString("uid")
	bookingID := c.Param("id")

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	updated, err := h.Service.Transition(c.Request.Context(), uid, bookingID, req.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	h.Logger.Info("booking status updated",
		zap.String("bookingId", updated.ID),
		zap.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, updated)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	uid := c.GetString("uid")

	b, err := h.Service.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	uid := c.GetString("uid")

	bookings, err := h.Service.ListForCaller(c.Request.Context(), uid)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
