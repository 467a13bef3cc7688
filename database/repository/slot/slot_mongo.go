// File: database/repository/slot/slot_mongo.go
package slotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"slotbook/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot *models.Slot) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	slot.ID = uuid.New().String()
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (r *mongoSlotRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
