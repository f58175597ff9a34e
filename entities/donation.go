package entities

import (
	"github.com/google/uuid"
	"time"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusClaimed   = "claimed"
	DonationStatusCompleted = "completed"
	DonationStatusCancelled = "cancelled"
)

type Donation struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID         uuid.UUID  `gorm:"not null" json:"food_item_id"`
	DonorID            uuid.UUID  `gorm:"not null" json:"donor_id"`
	ClaimantID         *uuid.UUID `json:"claimant_id,omitempty"`
	Quantity           string     `gorm:"not null" json:"quantity"`
	Description        string     `gorm:"type:text" json:"description,omitempty"`
	PickupLocation     string     `gorm:"not null" json:"pickup_location"`
	PickupInstructions string     `gorm:"type:text" json:"pickup_instructions,omitempty"`
	Status             string     `gorm:"default:available" json:"status"` // available, claimed, completed, cancelled
	ImageURL           string     `json:"image_url,omitempty"`
	ClaimedAt          *time.Time `json:"claimed_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`

	FoodItem *FoodItem          `gorm:"foreignKey:FoodItemID"`
	Donor    *User              `gorm:"foreignKey:DonorID"`
	Claimant *User              `gorm:"foreignKey:ClaimantID;constraint:OnDelete:SET NULL"`
	Messages []*DonationMessage `gorm:"foreignKey:DonationID"`
	Timestamp
}

type DonationMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `gorm:"not null" json:"donation_id"`
	SenderID   uuid.UUID `gorm:"not null" json:"sender_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`

	Donation *Donation `gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE"`
	Sender   *User     `gorm:"foreignKey:SenderID"`
	Timestamp
}
