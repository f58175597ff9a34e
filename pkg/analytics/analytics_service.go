package analytics

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/entities"
	"FoodSave-Backend/pkg/food"
	"context"
	"math"
	"time"
)

// Fixed environmental coefficients per wasted item.
const (
	co2PerWastedItem   = 2.5  // kg
	waterPerWastedItem = 1000 // liters
	mealsPerWastedItem = 3
)

type (
	AnalyticsService interface {
		GetUserStats(ctx context.Context, userID string) (domain.UserStatsResponse, error)
		GetEnvironmentalImpact(ctx context.Context, userID string) (domain.EnvironmentalImpactResponse, error)
		GetDashboard(ctx context.Context, userID string) (domain.AnalyticsDashboardResponse, error)
	}

	analyticsService struct {
		foodRepository food.FoodRepository
	}
)

func NewAnalyticsService(foodRepository food.FoodRepository) AnalyticsService {
	return &analyticsService{foodRepository: foodRepository}
}

func (s *analyticsService) GetUserStats(ctx context.Context, userID string) (domain.UserStatsResponse, error) {
	items, err := s.foodRepository.GetAllFoodItems(ctx, userID)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}
	return ComputeStats(items, time.Now().UTC()), nil
}

func (s *analyticsService) GetEnvironmentalImpact(ctx context.Context, userID string) (domain.EnvironmentalImpactResponse, error) {
	wasted, err := s.foodRepository.CountByStatus(ctx, userID, entities.FoodStatusWasted)
	if err != nil {
		return domain.EnvironmentalImpactResponse{}, err
	}
	return ComputeEnvironmentalImpact(int(wasted)), nil
}

func (s *analyticsService) GetDashboard(ctx context.Context, userID string) (domain.AnalyticsDashboardResponse, error) {
	stats, err := s.GetUserStats(ctx, userID)
	if err != nil {
		return domain.AnalyticsDashboardResponse{}, err
	}
	return domain.AnalyticsDashboardResponse{
		Stats:               stats,
		EnvironmentalImpact: ComputeEnvironmentalImpact(stats.WastedCount),
	}, nil
}

// ComputeStats aggregates status counts over a user's items. Statuses are
// classified at read time, so a stale stored status never skews the report.
func ComputeStats(items []*entities.FoodItem, now time.Time) domain.UserStatsResponse {
	stats := domain.UserStatsResponse{TotalItems: len(items)}

	for _, item := range items {
		switch food.DetermineStatus(item.ExpiryDate, item.Status, now) {
		case entities.FoodStatusFresh:
			stats.FreshCount++
		case entities.FoodStatusExpiringSoon:
			stats.ExpiringSoonCount++
		case entities.FoodStatusExpired:
			stats.ExpiredCount++
		case entities.FoodStatusConsumed:
			stats.ConsumedCount++
		case entities.FoodStatusWasted:
			stats.WastedCount++
		case entities.FoodStatusDonated:
			stats.DonatedCount++
		}
	}

	stats.SavedItems = stats.ConsumedCount + stats.DonatedCount
	if stats.TotalItems > 0 {
		stats.WastePercentage = roundOne(float64(stats.WastedCount) / float64(stats.TotalItems) * 100)
		stats.ConsumptionPercentage = roundOne(float64(stats.ConsumedCount) / float64(stats.TotalItems) * 100)
	}

	return stats
}

func ComputeEnvironmentalImpact(wastedCount int) domain.EnvironmentalImpactResponse {
	return domain.EnvironmentalImpactResponse{
		CO2SavedKg:       roundOne(float64(wastedCount) * co2PerWastedItem),
		WaterSavedLiters: wastedCount * waterPerWastedItem,
		MealsSaved:       wastedCount * mealsPerWastedItem,
	}
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
