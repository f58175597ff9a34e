package food

import (
	"FoodSave-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.FoodItem, int64, error)
		GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetExpiringItems(ctx context.Context, userID string, days int) ([]*entities.FoodItem, error)
		CountByStatus(ctx context.Context, userID string, statuses ...string) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetExpiringItems(ctx context.Context, userID string, days int) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	threshold := time.Now().UTC().AddDate(0, 0, days)

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date <= ? AND status IN ?",
			userID, threshold, []string{entities.FoodStatusFresh, entities.FoodStatusExpiringSoon}).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) CountByStatus(ctx context.Context, userID string, statuses ...string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
