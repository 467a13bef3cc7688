package provider

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"slotbook/models"
	"slotbook/utils"
)

// providerListCacheKey holds the cached provider list; the booking form
// fetches it on every load.
const providerListCacheKey = "providers:all"

const providerListCacheTTL = 5 * time.Minute

func (s *DefaultProviderService) CreateProvider(ctx context.Context, displayName, email string) (*models.Provider, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}
	p := &models.Provider{
		DisplayName: displayName,
		Email:       strings.TrimSpace(email),
	}
	created, err := s.Repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.invalidateProviderCache(ctx)
	return created, nil
}

func (s *DefaultProviderService) ListProviders(ctx context.Context) ([]models.Provider, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, providerListCacheKey).Result()
		if err == nil {
			var providers []models.Provider
			if err := json.Unmarshal([]byte(cached), &providers); err == nil {
				return providers, nil
			}
		}
	}

	providers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(providers); err == nil {
			if err := s.Cache.Set(ctx, providerListCacheKey, data, providerListCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("provider list cache write failed", zap.Error(err))
			}
		}
	}
	return providers, nil
}

func (s *DefaultProviderService) CreateSlot(ctx context.Context, providerID string, slotStart, slotEnd time.Time) (*models.Slot, error) {
	if !slotEnd.After(slotStart) {
		return nil, ErrInvalidInterval
	}
	slot := &models.Slot{
		ProviderID: providerID,
		SlotStart:  slotStart.UTC(),
		SlotEnd:    slotEnd.UTC(),
	}
	return s.Slots.Create(ctx, slot)
}

func (s *DefaultProviderService) ListSlots(ctx context.Context, providerID string) ([]models.Slot, error) {
	return s.Slots.ListByProvider(ctx, providerID)
}

func (s *DefaultProviderService) invalidateProviderCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, providerListCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("provider list cache invalidation failed", zap.Error(err))
	}
}
