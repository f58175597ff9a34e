package achievement

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryDonation        = "donation"
	CategoryWastePrevention = "waste_prevention"
	CategoryCommunity       = "community"
	CategoryConsumption     = "consumption"
)

type Definition struct {
	Name        string
	Description string
	Type        string
	Target      int
}

// Definitions is the fixed achievement table. Order matters only for
// deterministic evaluation output.
var Definitions = []Definition{
	{
		Name:        "First Donation",
		Description: "Made your first food donation",
		Type:        CategoryDonation,
		Target:      1,
	},
	{
		Name:        "Waste Warrior",
		Description: "Prevented 10+ items from going to waste",
		Type:        CategoryWastePrevention,
		Target:      10,
	},
	{
		Name:        "Community Hero",
		Description: "Donated 25+ meals to the community",
		Type:        CategoryCommunity,
		Target:      25,
	},
	{
		Name:        "Fresh Keeper",
		Description: "Consumed 50+ items before expiry",
		Type:        CategoryConsumption,
		Target:      50,
	},
}

type (
	AchievementService interface {
		Evaluate(ctx context.Context, userID string, category string, count int) ([]*entities.Achievement, error)
		GetUserAchievements(ctx context.Context, userID string) ([]domain.AchievementResponse, error)
	}

	achievementService struct {
		achievementRepository AchievementRepository
	}
)

func NewAchievementService(achievementRepository AchievementRepository) AchievementService {
	return &achievementService{achievementRepository: achievementRepository}
}

// Evaluate awards every definition in the category whose target the running
// count has reached and the user has not earned yet. The unique index on
// (user_id, name) makes a concurrent double-award collapse into a no-op.
func (s *achievementService) Evaluate(ctx context.Context, userID string, category string, count int) ([]*entities.Achievement, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var earned []*entities.Achievement
	for _, def := range Definitions {
		if def.Type != category || count < def.Target {
			continue
		}

		_, err := s.achievementRepository.GetByUserAndName(ctx, userID, def.Name)
		if err == nil {
			continue // already earned
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return earned, err
		}

		achievement := &entities.Achievement{
			ID:          uuid.New(),
			UserID:      userUUID,
			Type:        def.Type,
			Name:        def.Name,
			Description: def.Description,
			EarnedAt:    time.Now().UTC(),
			Progress:    100,
			TargetValue: def.Target,
		}

		if err := s.achievementRepository.CreateAchievement(ctx, achievement); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue // lost a race with a concurrent evaluation
			}
			return earned, err
		}
		earned = append(earned, achievement)
	}

	return earned, nil
}

func (s *achievementService) GetUserAchievements(ctx context.Context, userID string) ([]domain.AchievementResponse, error) {
	achievements, err := s.achievementRepository.GetUserAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		result = append(result, domain.AchievementResponse{
			ID:          a.ID.String(),
			Type:        a.Type,
			Name:        a.Name,
			Description: a.Description,
			EarnedAt:    a.EarnedAt,
			Progress:    a.Progress,
			TargetValue: a.TargetValue,
		})
	}
	return result, nil
}
