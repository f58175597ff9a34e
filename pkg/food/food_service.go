package food

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/entities"
	"FoodSave-Backend/pkg/achievement"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetAllFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		UpdateStatus(ctx context.Context, id string, req domain.UpdateFoodStatusRequest, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository     FoodRepository
		achievementService achievement.AchievementService
	}
)

func NewFoodService(foodRepository FoodRepository, achievementService achievement.AchievementService) FoodService {
	return &foodService{
		foodRepository:     foodRepository,
		achievementService: achievementService,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	purchaseDate := time.Now().UTC()
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err == nil {
			purchaseDate = parsed
		}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	foodItem := &entities.FoodItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
		Status:       DetermineStatus(expiryDate, "", time.Now().UTC()),
		Notes:        req.Notes,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}
	if req.Category != "" {
		foodItem.Category = req.Category
	}
	if req.Quantity != "" {
		foodItem.Quantity = req.Quantity
	}
	if req.Notes != "" {
		foodItem.Notes = req.Notes
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = expiryDate
	}
	foodItem.Status = DetermineStatus(foodItem.ExpiryDate, foodItem.Status, time.Now().UTC())

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	// Persist drifted statuses before filtering so a status filter matches
	// what the response reports, and the count matches the filtered set.
	all, err := s.foodRepository.GetAllFoodItems(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if err := s.refreshStatuses(ctx, all); err != nil {
		return nil, 0, err
	}

	items, count, err := s.foodRepository.GetFoodItems(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toFoodItemResponse(item))
	}
	return result, count, nil
}

func (s *foodService) GetAllFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	items, err := s.foodRepository.GetAllFoodItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.refreshStatuses(ctx, items); err != nil {
		return nil, err
	}

	result := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toFoodItemResponse(item))
	}
	return result, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if err := s.refreshStatuses(ctx, []*entities.FoodItem{foodItem}); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateStatus(ctx context.Context, id string, req domain.UpdateFoodStatusRequest, userID string) error {
	if req.Status != entities.FoodStatusConsumed && req.Status != entities.FoodStatusWasted {
		return domain.ErrInvalidFoodStatus
	}

	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	foodItem.Status = req.Status
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return err
	}

	if req.Status == entities.FoodStatusConsumed {
		s.checkConsumptionAchievements(ctx, userID)
	}

	return nil
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	items, err := s.foodRepository.GetAllFoodItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	if err := s.refreshStatuses(ctx, items); err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{
		TotalItems:   len(items),
		ExpiringSoon: []*domain.FoodItemResponse{},
	}
	for _, item := range items {
		switch item.Status {
		case entities.FoodStatusFresh:
			stats.FreshCount++
		case entities.FoodStatusExpiringSoon:
			stats.ExpiringSoonCount++
			res := toFoodItemResponse(item)
			stats.ExpiringSoon = append(stats.ExpiringSoon, &res)
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

	return stats, nil
}

func (s *foodService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}
	if foodItem.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedFoodAccess
	}
	return foodItem, nil
}

// refreshStatuses recomputes date-based statuses and persists any that
// drifted since the last read.
func (s *foodService) refreshStatuses(ctx context.Context, items []*entities.FoodItem) error {
	now := time.Now().UTC()
	for _, item := range items {
		status := DetermineStatus(item.ExpiryDate, item.Status, now)
		if status == item.Status {
			continue
		}
		item.Status = status
		if err := s.foodRepository.UpdateFoodItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Achievement evaluation is fire-and-check. A failure here must not roll
// back the status write that triggered it.
func (s *foodService) checkConsumptionAchievements(ctx context.Context, userID string) {
	consumed, err := s.foodRepository.CountByStatus(ctx, userID, entities.FoodStatusConsumed)
	if err != nil {
		log.Printf("achievement check failed for user %s: %v", userID, err)
		return
	}
	if _, err := s.achievementService.Evaluate(ctx, userID, achievement.CategoryConsumption, int(consumed)); err != nil {
		log.Printf("achievement check failed for user %s: %v", userID, err)
	}

	saved, err := s.foodRepository.CountByStatus(ctx, userID, entities.FoodStatusConsumed, entities.FoodStatusDonated)
	if err != nil {
		log.Printf("achievement check failed for user %s: %v", userID, err)
		return
	}
	if _, err := s.achievementService.Evaluate(ctx, userID, achievement.CategoryWastePrevention, int(saved)); err != nil {
		log.Printf("achievement check failed for user %s: %v", userID, err)
	}
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		PurchaseDate:    item.PurchaseDate,
		ExpiryDate:      item.ExpiryDate,
		Status:          item.Status,
		DaysUntilExpiry: DaysUntilExpiry(item.ExpiryDate, time.Now().UTC()),
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt,
	}
}
