package notification

import (
	"FoodSave-Backend/entities"
	"FoodSave-Backend/internal/utils/mailing"
	"FoodSave-Backend/pkg/food"
	"FoodSave-Backend/pkg/user"
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

type (
	NotificationService interface {
		// SendExpiryAlerts sweeps every user's inventory and emails a
		// best-effort alert for items expiring within the warning window.
		// Delivery failures are logged and never propagated.
		SendExpiryAlerts(ctx context.Context) int
	}

	notificationService struct {
		userRepository user.UserRepository
		foodRepository food.FoodRepository
		sendMail       func(toEmail string, subject string, body string) error
	}
)

func NewNotificationService(userRepository user.UserRepository, foodRepository food.FoodRepository) NotificationService {
	return &notificationService{
		userRepository: userRepository,
		foodRepository: foodRepository,
		sendMail:       mailing.SendMail,
	}
}

func (s *notificationService) SendExpiryAlerts(ctx context.Context) int {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Printf("expiry alert sweep failed: %v", err)
		return 0
	}

	sent := 0
	for _, u := range users {
		items, err := s.foodRepository.GetExpiringItems(ctx, u.ID.String(), food.ExpiringSoonDays)
		if err != nil {
			log.Printf("expiry alert: failed to load items for %s: %v", u.Username, err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		subject, body := BuildExpiryAlert(u.Username, items, time.Now().UTC())
		if err := s.sendMail(u.Email, subject, body); err != nil {
			log.Printf("expiry alert: failed to send to %s: %v", u.Email, err)
			continue
		}
		sent++
	}

	return sent
}

// BuildExpiryAlert formats the alert email for a user's expiring items.
func BuildExpiryAlert(username string, items []*entities.FoodItem, now time.Time) (string, string) {
	subject := fmt.Sprintf("FoodSave Alert: %d Items Expiring Soon", len(items))

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", username)
	fmt.Fprintf(&b, "You have %d food item(s) that will expire soon:\n\n", len(items))

	for _, item := range items {
		daysLeft := food.DaysUntilExpiry(item.ExpiryDate, now)
		fmt.Fprintf(&b, "- %s (%s) - Expires in %d days\n", item.Name, item.Quantity, daysLeft)
	}

	b.WriteString("\nSuggested actions:\n")
	b.WriteString("- Consume these items soon\n")
	b.WriteString("- Consider donating if you can't consume them\n")
	b.WriteString("- Update their status in your FoodSave dashboard\n")
	b.WriteString("\nReduce waste, save money!\n\nBest regards,\nFoodSave Team\n")

	return subject, b.String()
}
