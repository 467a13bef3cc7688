package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// allowedTransitions is the status graph. Terminal statuses map to empty
// sets; a status missing from the map is not a valid status at all.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// Valid reports whether s is a member of the status enum.
func (s BookingStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Terminal reports whether s has no outgoing transitions.
func (s BookingStatus) Terminal() bool {
	return s.Valid() && len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a claim on a provider's time.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	ClientUID  string        `bson:"client_uid" json:"clientUid"`
	ProviderID string        `bson:"provider_id" json:"providerId"`
	SlotStart  time.Time     `bson:"slot_start" json:"slotStart"`
	SlotEnd    time.Time     `bson:"slot_end" json:"slotEnd"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// Overlaps reports whether the booking's [SlotStart, SlotEnd) interval
// intersects [start, end). Intervals are half-open, so touching
// boundaries do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.SlotStart.Before(end) && start.Before(b.SlotEnd)
}
