package achievement

import (
	"FoodSave-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AchievementRepository interface {
		GetByUserAndName(ctx context.Context, userID string, name string) (*entities.Achievement, error)
		CreateAchievement(ctx context.Context, achievement *entities.Achievement) error
		GetUserAchievements(ctx context.Context, userID string) ([]*entities.Achievement, error)
	}

	achievementRepository struct {
		db *gorm.DB
	}
)

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) GetByUserAndName(ctx context.Context, userID string, name string) (*entities.Achievement, error) {
	var achievement entities.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *achievementRepository) CreateAchievement(ctx context.Context, achievement *entities.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

func (r *achievementRepository) GetUserAchievements(ctx context.Context, userID string) ([]*entities.Achievement, error) {
	var achievements []*entities.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at asc").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}
