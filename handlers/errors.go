package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotbook/services/booking"
)

// statusForKind maps booking engine error kinds to HTTP statuses. This is
// the only place transport codes meet the engine's error taxonomy.
func statusForKind(k booking.Kind) int {
	switch k {
	case booking.KindInvalid:
		return http.StatusBadRequest
	case booking.KindConflict, booking.KindInvalidTransition:
		return http.StatusConflict
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindForbidden:
		return http.StatusForbidden
	case booking.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondBookingError(c *gin.Context, err error) {
	var svcErr *booking.Error
	if errors.As(err, &svcErr) {
		c.JSON(statusForKind(svcErr.Kind), gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
}
