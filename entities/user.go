package entities

import (
	"github.com/google/uuid"
)

const (
	UserTypeIndividual = "individual"
	UserTypeBusiness   = "business"
	UserTypeCharity    = "charity"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"`
	UserType     string    `gorm:"default:individual" json:"user_type"` // individual, business, charity
	Location     string    `json:"location,omitempty"`

	FoodItems    []*FoodItem    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Donations    []*Donation    `gorm:"foreignKey:DonorID;constraint:OnDelete:CASCADE"`
	Achievements []*Achievement `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}
