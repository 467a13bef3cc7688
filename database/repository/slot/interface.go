// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotbook/models"
)

// SlotRepository stores provider availability windows. Slots are
// append-only; there is no update or delete path.
type SlotRepository interface {
	Create(ctx context.Context, slot *models.Slot) (*models.Slot, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Slot, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a MongoDB-backed SlotRepository.
func NewMongoSlotRepo(db *mongo.Database) SlotRepository {
	return &mongoSlotRepo{coll: db.Collection("availability")}
}
