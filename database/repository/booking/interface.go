// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"slotbook/models"
)

// ErrSlotTaken is returned when the requested interval overlaps an
// existing booking for the same provider.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when no booking exists for the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the transactional store for bookings. The overlap
// check and the guarded status update each run as one atomic, isolated
// read-then-write; conflict detection never happens outside a transaction.
type BookingRepository interface {
	// CreateWithOverlapCheck inserts b with a fresh id, pending status and
	// server-assigned createdAt, but only if no existing booking for the
	// same provider overlaps [SlotStart, SlotEnd). Returns ErrSlotTaken on
	// overlap.
	CreateWithOverlapCheck(ctx context.Context, b *models.Booking) (*models.Booking, error)

	// UpdateStatusGuarded loads the booking, runs guard against the current
	// record, and commits status plus updatedAt, all inside one
	// transaction. A guard error aborts the transaction and is returned
	// unchanged. Returns ErrNotFound when the id is unknown.
	UpdateStatusGuarded(ctx context.Context, id string, next models.BookingStatus, guard func(current *models.Booking) error) (*models.Booking, error)

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// ListByUID returns bookings in which uid is the client or the provider.
	ListByUID(ctx context.Context, uid string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
	// locks holds one anchor document per provider. Every create claims
	// the provider's anchor inside its transaction, so concurrent creates
	// for one provider write-conflict instead of committing overlapping
	// inserts from disjoint snapshots.
	locks *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	r := &mongoBookingRepo{
		coll:  db.Collection("bookings"),
		locks: db.Collection("provider_locks"),
	}
	if err := r.EnsureIndexes(); err != nil {
		zap.L().Warn("booking index creation failed", zap.Error(err))
	}
	return r
}
