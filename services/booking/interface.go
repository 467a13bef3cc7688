package booking

import (
	"context"
	"time"

	bookingRepo "slotbook/database/repository/booking"
	"slotbook/models"
)

// BookingService is the booking lifecycle engine: conflict-checked
// creation and the guarded status state machine. Callers pass the
// verified uid explicitly; the engine never reads ambient identity.
type BookingService interface {
	// Create books [slotStart, slotEnd) with the provider on behalf of
	// clientUID. The overlap check and the insert run as one atomic unit,
	// so two overlapping requests for the same provider can never both
	// succeed.
	Create(ctx context.Context, clientUID, providerID string, slotStart, slotEnd time.Time) (*models.Booking, error)

	// Transition moves the booking to next if callerUID is a party to the
	// booking and the move is legal from the current status.
	Transition(ctx context.Context, callerUID, bookingID string, next models.BookingStatus) (*models.Booking, error)

	// Get returns the booking if callerUID is a party to it.
	Get(ctx context.Context, callerUID, bookingID string) (*models.Booking, error)

	// ListForCaller returns bookings where callerUID is client or provider.
	ListForCaller(ctx context.Context, callerUID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation backed by the
// transactional booking repository.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
