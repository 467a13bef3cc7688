package models

import "time"

// Slot is one bookable availability window offered by a provider.
// Slots are immutable once created.
type Slot struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	SlotStart  time.Time `bson:"slot_start" json:"slotStart"`
	SlotEnd    time.Time `bson:"slot_end" json:"slotEnd"`
}
