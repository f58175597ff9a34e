package food

import (
	"FoodSave-Backend/entities"
	"time"
)

// ExpiringSoonDays is the window, in days, in which an unexpired item is
// considered expiring soon.
const ExpiringSoonDays = 3

// DaysUntilExpiry returns the number of whole days between now and the
// expiry date, comparing at date granularity. Negative once the expiry
// date has passed.
func DaysUntilExpiry(expiryDate, now time.Time) int {
	expiry := time.Date(expiryDate.Year(), expiryDate.Month(), expiryDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(today).Hours() / 24)
}

// DetermineStatus computes an item's freshness status from its expiry date.
// Terminal statuses (consumed, wasted, donated) are left untouched; there is
// no background job, so callers re-run this on every read.
func DetermineStatus(expiryDate time.Time, currentStatus string, now time.Time) string {
	if entities.IsTerminalStatus(currentStatus) {
		return currentStatus
	}

	daysLeft := DaysUntilExpiry(expiryDate, now)
	if daysLeft < 0 {
		return entities.FoodStatusExpired
	}
	if daysLeft <= ExpiringSoonDays {
		return entities.FoodStatusExpiringSoon
	}
	return entities.FoodStatusFresh
}
