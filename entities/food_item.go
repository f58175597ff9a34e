package entities

import (
	"github.com/google/uuid"
	"time"
)

const (
	FoodStatusFresh        = "fresh"
	FoodStatusExpiringSoon = "expiring_soon"
	FoodStatusExpired      = "expired"
	FoodStatusConsumed     = "consumed"
	FoodStatusWasted       = "wasted"
	FoodStatusDonated      = "donated"
)

type FoodItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `gorm:"not null" json:"category"` // Fruits, Vegetables, Dairy, Meat, Grains, Beverages, Other
	Quantity     string    `json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `gorm:"not null" json:"expiry_date"`
	Status       string    `gorm:"default:fresh" json:"status"` // fresh, expiring_soon, expired, consumed, wasted, donated
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`

	User      *User       `gorm:"foreignKey:UserID"`
	Donations []*Donation `gorm:"foreignKey:FoodItemID"`
	Timestamp
}

// IsTerminalStatus reports whether a status was set by an explicit user
// action. Terminal statuses are never overwritten by the date-based
// recomputation.
func IsTerminalStatus(status string) bool {
	return status == FoodStatusConsumed ||
		status == FoodStatusWasted ||
		status == FoodStatusDonated
}
