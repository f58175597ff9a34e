package domain

import (
	"time"
)

var (
	MessageSuccessGetAchievements = "achievements retrieved successfully"
	MessageFailedGetAchievements  = "failed to retrieve achievements"
)

type AchievementResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
	Progress    int       `json:"progress"`
	TargetValue int       `json:"target_value"`
}
