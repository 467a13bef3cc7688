// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotbook/models"
)

// createTxnAttempts bounds retries of the create transaction after a
// write-conflict abort. A retried scan runs against a fresh snapshot and
// sees the winning booking, so the loser lands on ErrSlotTaken.
const createTxnAttempts = 3

// isRetryableTxnError reports whether the transaction aborted because it
// lost a race and is worth rerunning.
func isRetryableTxnError(err error) bool {
	// The first concurrent claim of a provider anchor surfaces as a
	// duplicate key; the anchor exists on retry.
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}

func (r *mongoBookingRepo) CreateWithOverlapCheck(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	b.ID = uuid.New().String()
	b.Status = models.StatusPending
	b.CreatedAt = time.Now().UTC()

	txnFn := func(sc mongo.SessionContext) error {
		// WiredTiger snapshots detect write-write conflicts only, not
		// read-set conflicts: two creates inserting disjoint documents
		// would both commit even with overlapping intervals. Claiming
		// the provider's anchor document first puts every create for
		// one provider into the same write set, so racing transactions
		// conflict and the loser aborts into the retry path.
		if _, err := r.locks.UpdateOne(sc,
			bson.M{"provider_id": b.ProviderID},
			bson.M{"$set": bson.M{"provider_id": b.ProviderID, "claimed_at": time.Now().UTC()}},
			options.Update().SetUpsert(true),
		); err != nil {
			return fmt.Errorf("claim provider anchor failed: %w", err)
		}

		// Pre-filter on slot_start < candidate end; the store has no
		// interval index, so the full overlap test runs over the result.
		filter := bson.M{
			"provider_id": b.ProviderID,
			"slot_start":  bson.M{"$lt": b.SlotEnd},
		}
		cursor, err := r.coll.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap scan failed: %w", err)
		}
		var existing []models.Booking
		if err := cursor.All(sc, &existing); err != nil {
			return fmt.Errorf("overlap scan decode failed: %w", err)
		}
		for i := range existing {
			if existing[i].Overlaps(b.SlotStart, b.SlotEnd) {
				return ErrSlotTaken
			}
		}
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < createTxnAttempts; attempt++ {
		err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
			if err := sc.StartTransaction(); err != nil {
				return err
			}
			if err := txnFn(sc); err != nil {
				_ = sc.AbortTransaction(sc)
				return err
			}
			return sc.CommitTransaction(sc)
		})
		if err == nil {
			return b, nil
		}
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		lastErr = err
		if !isRetryableTxnError(err) {
			break
		}
	}
	return nil, fmt.Errorf("booking transaction failed: %w", lastErr)
}

func (r *mongoBookingRepo) UpdateStatusGuarded(ctx context.Context, id string, next models.BookingStatus, guard func(current *models.Booking) error) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var updated models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		var current models.Booking
		if err := r.coll.FindOne(sc, bson.M{"id": id}).Decode(&current); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("load booking failed: %w", err)
		}
		if err := guard(&current); err != nil {
			return err
		}
		now := time.Now().UTC()
		res, err := r.coll.UpdateOne(sc, bson.M{"id": id}, bson.M{
			"$set": bson.M{"status": next, "updated_at": now},
		})
		if err != nil {
			return fmt.Errorf("update booking status failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		updated = current
		updated.Status = next
		updated.UpdatedAt = now
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) ListByUID(ctx context.Context, uid string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"client_uid": uid},
		bson.M{"provider_id": uid},
	}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
