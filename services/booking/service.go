package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	bookingRepo "slotbook/database/repository/booking"
	"slotbook/models"
	"slotbook/utils"
)

func (s *DefaultBookingService) Create(ctx context.Context, clientUID, providerID string, slotStart, slotEnd time.Time) (*models.Booking, error) {
	if clientUID == "" {
		return nil, newError(KindInvalid, "client is required")
	}
	if providerID == "" {
		return nil, newError(KindInvalid, "provider is required")
	}
	if !slotEnd.After(slotStart) {
		return nil, newError(KindInvalid, "slotEnd must be after slotStart")
	}

	candidate := &models.Booking{
		ClientUID:  clientUID,
		ProviderID: providerID,
		SlotStart:  slotStart.UTC(),
		SlotEnd:    slotEnd.UTC(),
	}
	created, err := s.Repo.CreateWithOverlapCheck(ctx, candidate)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, newError(KindConflict, "slot already booked")
		}
		utils.GetLogger().Error("booking create transaction failed",
			zap.String("providerId", providerID), zap.Error(err))
		return nil, newError(KindUnavailable, "booking could not be completed, please retry")
	}
	return created, nil
}

func (s *DefaultBookingService) Transition(ctx context.Context, callerUID, bookingID string, next models.BookingStatus) (*models.Booking, error) {
	if bookingID == "" {
		return nil, newError(KindInvalid, "booking id is required")
	}
	if !next.Valid() {
		return nil, newError(KindInvalid, "unknown status %q", string(next))
	}

	guard := func(current *models.Booking) error {
		if callerUID != current.ClientUID && callerUID != current.ProviderID {
			return newError(KindForbidden, "you may not update this booking")
		}
		if !current.Status.CanTransitionTo(next) {
			return newError(KindInvalidTransition, "cannot transition from %s to %s", current.Status, next)
		}
		return nil
	}

	updated, err := s.Repo.UpdateStatusGuarded(ctx, bookingID, next, guard)
	if err != nil {
		var svcErr *Error
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "booking not found")
		}
		utils.GetLogger().Error("booking transition transaction failed",
			zap.String("bookingId", bookingID), zap.Error(err))
		return nil, newError(KindUnavailable, "update could not be completed, please retry")
	}
	return updated, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, callerUID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newError(KindNotFound, "booking not found")
		}
		return nil, newError(KindUnavailable, "booking could not be loaded, please retry")
	}
	if callerUID != b.ClientUID && callerUID != b.ProviderID {
		return nil, newError(KindForbidden, "you may not view this booking")
	}
	return b, nil
}

func (s *DefaultBookingService) ListForCaller(ctx context.Context, callerUID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUID(ctx, callerUID)
	if err != nil {
		return nil, newError(KindUnavailable, "bookings could not be loaded, please retry")
	}
	return bookings, nil
}
