package entities

import (
	"github.com/google/uuid"
	"time"
)

type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	Type        string    `gorm:"not null" json:"type"` // donation, waste_prevention, community, consumption
	Name        string    `gorm:"not null;uniqueIndex:idx_user_achievement" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	EarnedAt    time.Time `gorm:"type:timestamp" json:"earned_at"`
	Progress    int       `gorm:"default:100" json:"progress"`
	TargetValue int       `gorm:"default:1" json:"target_value"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
