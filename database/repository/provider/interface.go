// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"slotbook/models"
)

// ErrNotFound is returned when no provider exists for the given id.
var ErrNotFound = errors.New("provider not found")

type ProviderRepository interface {
	Create(ctx context.Context, p *models.Provider) (*models.Provider, error)
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	List(ctx context.Context) ([]models.Provider, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a MongoDB-backed ProviderRepository.
func NewMongoProviderRepo(db *mongo.Database) ProviderRepository {
	return &mongoProviderRepo{coll: db.Collection("providers")}
}
