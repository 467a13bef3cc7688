package models

// Provider is a party offering bookable time.
type Provider struct {
	ID          string `bson:"id" json:"id"`
	DisplayName string `bson:"display_name" json:"displayName"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
}
