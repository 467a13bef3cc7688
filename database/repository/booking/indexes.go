// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Backs the overlap pre-filter (provider_id equality, slot_start range).
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "slot_start", Value: 1}},
			Options: options.Index().SetName("provider_slot_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "client_uid", Value: 1}},
			Options: options.Index().SetName("client_uid_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	// One anchor per provider; the unique constraint is what turns
	// concurrent first claims into a conflict instead of two inserts.
	_, err = r.locks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "provider_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_provider_id"),
	})
	if err != nil {
		return fmt.Errorf("failed to create provider lock index: %w", err)
	}
	return nil
}
