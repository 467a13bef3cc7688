package provider

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	providerRepo "slotbook/database/repository/provider"
	slotRepo "slotbook/database/repository/slot"
	"slotbook/models"
)

// ErrInvalidInterval is returned when a slot's end does not come after
// its start.
var ErrInvalidInterval = errors.New("slotEnd must be after slotStart")

// ErrDisplayNameRequired is returned when a provider is created without
// a display name.
var ErrDisplayNameRequired = errors.New("display name is required")

// ProviderService manages providers and their availability windows.
type ProviderService interface {
	CreateProvider(ctx context.Context, displayName, email string) (*models.Provider, error)
	ListProviders(ctx context.Context) ([]models.Provider, error)
	CreateSlot(ctx context.Context, providerID string, slotStart, slotEnd time.Time) (*models.Slot, error)
	ListSlots(ctx context.Context, providerID string) ([]models.Slot, error)
}

// DefaultProviderService is the production implementation. Cache may be
// nil, in which case provider listing always hits the store.
type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Slots slotRepo.SlotRepository
	Cache *redis.Client
}
