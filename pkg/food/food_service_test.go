package food

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	items   map[string]*entities.FoodItem
	updates int
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{items: make(map[string]*entities.FoodItem)}
}

func (r *fakeFoodRepository) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeFoodRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	if item, ok := r.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFoodRepository) UpdateFoodItem(_ context.Context, item *entities.FoodItem) error {
	r.items[item.ID.String()] = item
	r.updates++
	return nil
}

func (r *fakeFoodRepository) DeleteFoodItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeFoodRepository) GetFoodItems(_ context.Context, userID string, status string, _, _ int) ([]*entities.FoodItem, int64, error) {
	var result []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if status != "all" && status != "" && item.Status != status {
			continue
		}
		result = append(result, item)
	}
	return result, int64(len(result)), nil
}

func (r *fakeFoodRepository) GetAllFoodItems(_ context.Context, userID string) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID.String() == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeFoodRepository) GetExpiringItems(_ context.Context, _ string, _ int) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (r *fakeFoodRepository) CountByStatus(_ context.Context, userID string, statuses ...string) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		for _, s := range statuses {
			if item.Status == s {
				count++
				break
			}
		}
	}
	return count, nil
}

type fakeAchievementService struct {
	evaluations []string
}

func (s *fakeAchievementService) Evaluate(_ context.Context, _ string, category string, _ int) ([]*entities.Achievement, error) {
	s.evaluations = append(s.evaluations, category)
	return nil, nil
}

func (s *fakeAchievementService) GetUserAchievements(_ context.Context, _ string) ([]domain.AchievementResponse, error) {
	return nil, nil
}

func TestAddFoodItem(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, &fakeAchievementService{})
	userID := uuid.NewString()

	expiry := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Yogurt",
		Category:   "Dairy",
		Quantity:   "4 cups",
		ExpiryDate: expiry,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, entities.FoodStatusFresh, res.Status)
	assert.Equal(t, 10, res.DaysUntilExpiry)
	assert.Len(t, repo.items, 1)
}

func TestAddFoodItemClassifiesOnCreate(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, &fakeAchievementService{})

	expiry := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Bread",
		Category:   "Grains",
		ExpiryDate: expiry,
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, entities.FoodStatusExpiringSoon, res.Status)
}

func TestAddFoodItemRejectsBadDate(t *testing.T) {
	service := NewFoodService(newFakeFoodRepository(), &fakeAchievementService{})

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Bread",
		Category:   "Grains",
		ExpiryDate: "10/03/2026",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestGetFoodItemByIDOwnership(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, &fakeAchievementService{})

	owner := uuid.New()
	item := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "Cheese",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, 10),
		Status:     entities.FoodStatusFresh,
	}
	repo.items[item.ID.String()] = item

	_, err := service.GetFoodItemByID(context.Background(), item.ID.String(), owner.String())
	assert.NoError(t, err)

	_, err = service.GetFoodItemByID(context.Background(), item.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedFoodAccess)

	_, err = service.GetFoodItemByID(context.Background(), uuid.NewString(), owner.String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestUpdateStatusRejectsNonTerminal(t *testing.T) {
	service := NewFoodService(newFakeFoodRepository(), &fakeAchievementService{})

	err := service.UpdateStatus(context.Background(), uuid.NewString(), domain.UpdateFoodStatusRequest{
		Status: entities.FoodStatusExpired,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidFoodStatus)
}

func TestUpdateStatusConsumedTriggersAchievements(t *testing.T) {
	repo := newFakeFoodRepository()
	achievements := &fakeAchievementService{}
	service := NewFoodService(repo, achievements)

	owner := uuid.New()
	item := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "Cheese",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, 10),
		Status:     entities.FoodStatusFresh,
	}
	repo.items[item.ID.String()] = item

	err := service.UpdateStatus(context.Background(), item.ID.String(), domain.UpdateFoodStatusRequest{
		Status: entities.FoodStatusConsumed,
	}, owner.String())
	require.NoError(t, err)

	assert.Equal(t, entities.FoodStatusConsumed, item.Status)
	assert.Contains(t, achievements.evaluations, "consumption")
	assert.Contains(t, achievements.evaluations, "waste_prevention")
}

func TestUpdateStatusWastedSkipsAchievements(t *testing.T) {
	repo := newFakeFoodRepository()
	achievements := &fakeAchievementService{}
	service := NewFoodService(repo, achievements)

	owner := uuid.New()
	item := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "Cheese",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, 10),
		Status:     entities.FoodStatusFresh,
	}
	repo.items[item.ID.String()] = item

	err := service.UpdateStatus(context.Background(), item.ID.String(), domain.UpdateFoodStatusRequest{
		Status: entities.FoodStatusWasted,
	}, owner.String())
	require.NoError(t, err)

	assert.Equal(t, entities.FoodStatusWasted, item.Status)
	assert.Empty(t, achievements.evaluations)
}

func TestGetAllFoodItemsPersistsDriftedStatuses(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, &fakeAchievementService{})

	owner := uuid.New()
	stale := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "Old milk",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, -5),
		Status:     entities.FoodStatusFresh,
	}
	current := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "New milk",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, 14),
		Status:     entities.FoodStatusFresh,
	}
	repo.items[stale.ID.String()] = stale
	repo.items[current.ID.String()] = current

	items, err := service.GetAllFoodItems(context.Background(), owner.String())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, entities.FoodStatusExpired, stale.Status)
	assert.Equal(t, entities.FoodStatusFresh, current.Status)
	assert.Equal(t, 1, repo.updates) // only the drifted item is written back
}

func TestGetFoodItemsStatusFilterSeesReclassifiedStatuses(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, &fakeAchievementService{})

	owner := uuid.New()
	stale := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "Old milk",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, -5),
		Status:     entities.FoodStatusFresh,
	}
	current := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "New milk",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, 14),
		Status:     entities.FoodStatusFresh,
	}
	repo.items[stale.ID.String()] = stale
	repo.items[current.ID.String()] = current

	// The stored-fresh-but-expired item must not leak into a fresh filter.
	items, count, err := service.GetFoodItems(context.Background(), owner.String(), entities.FoodStatusFresh, 1, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "New milk", items[0].Name)
	assert.Equal(t, int64(1), count)

	items, count, err = service.GetFoodItems(context.Background(), owner.String(), entities.FoodStatusExpired, 1, 20)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Old milk", items[0].Name)
	assert.Equal(t, entities.FoodStatusExpired, items[0].Status)
	assert.Equal(t, int64(1), count)
}

func TestGetDashboardStats(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo, &fakeAchievementService{})

	owner := uuid.New()
	for _, tc := range []struct {
		status string
		days   int
	}{
		{entities.FoodStatusFresh, 14},
		{entities.FoodStatusFresh, 2},
		{entities.FoodStatusConsumed, 14},
		{entities.FoodStatusWasted, 14},
	} {
		item := &entities.FoodItem{
			ID:         uuid.New(),
			UserID:     owner,
			Name:       "Item",
			ExpiryDate: time.Now().UTC().AddDate(0, 0, tc.days),
			Status:     tc.status,
		}
		repo.items[item.ID.String()] = item
	}

	stats, err := service.GetDashboardStats(context.Background(), owner.String())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.FreshCount)
	assert.Equal(t, 1, stats.ExpiringSoonCount)
	assert.Equal(t, 1, stats.ConsumedCount)
	assert.Equal(t, 1, stats.WastedCount)
	assert.Len(t, stats.ExpiringSoon, 1)
}
