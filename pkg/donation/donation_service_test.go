package donation

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/entities"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDonationRepository struct {
	donations map[string]*entities.Donation
	messages  []*entities.DonationMessage
	claimRows int64 // overrides the fake's natural claim result when >= 0
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{
		donations: make(map[string]*entities.Donation),
		claimRows: -1,
	}
}

func (r *fakeDonationRepository) CreateDonation(_ context.Context, donation *entities.Donation) error {
	r.donations[donation.ID.String()] = donation
	return nil
}

func (r *fakeDonationRepository) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	if d, ok := r.donations[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDonationRepository) UpdateDonation(_ context.Context, donation *entities.Donation) error {
	r.donations[donation.ID.String()] = donation
	return nil
}

func (r *fakeDonationRepository) GetAvailableDonations(_ context.Context, _, _ int) ([]*entities.Donation, int64, error) {
	var result []*entities.Donation
	for _, d := range r.donations {
		if d.Status == entities.DonationStatusAvailable {
			result = append(result, d)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeDonationRepository) GetDonationsByDonor(_ context.Context, donorID string) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, d := range r.donations {
		if d.DonorID.String() == donorID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *fakeDonationRepository) GetDonationsByClaimant(_ context.Context, claimantID string) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, d := range r.donations {
		if d.ClaimantID != nil && d.ClaimantID.String() == claimantID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *fakeDonationRepository) ClaimDonation(_ context.Context, id string, claimantID string, claimedAt time.Time) (int64, error) {
	if r.claimRows >= 0 {
		return r.claimRows, nil
	}
	d, ok := r.donations[id]
	if !ok || d.Status != entities.DonationStatusAvailable {
		return 0, nil
	}
	claimantUUID := uuid.MustParse(claimantID)
	d.Status = entities.DonationStatusClaimed
	d.ClaimantID = &claimantUUID
	d.ClaimedAt = &claimedAt
	return 1, nil
}

func (r *fakeDonationRepository) CountByDonor(_ context.Context, donorID string, statuses ...string) (int64, error) {
	var count int64
	for _, d := range r.donations {
		if d.DonorID.String() != donorID {
			continue
		}
		if len(statuses) == 0 {
			count++
			continue
		}
		for _, s := range statuses {
			if d.Status == s {
				count++
				break
			}
		}
	}
	return count, nil
}

func (r *fakeDonationRepository) AddMessage(_ context.Context, message *entities.DonationMessage) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeDonationRepository) GetMessages(_ context.Context, donationID string) ([]*entities.DonationMessage, error) {
	var result []*entities.DonationMessage
	for _, m := range r.messages {
		if m.DonationID.String() == donationID {
			result = append(result, m)
		}
	}
	return result, nil
}

type fakeFoodRepository struct {
	items map[string]*entities.FoodItem
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
	return nil
}

func (r *fakeFoodRepository) DeleteFoodItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeFoodRepository) GetFoodItems(_ context.Context, _ string, _ string, _, _ int) ([]*entities.FoodItem, int64, error) {
	return nil, 0, nil
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

type fakeS3 struct{}

func (fakeS3) UploadFile(key string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + key, nil
}

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://example.com/" + objectKey
}

type donationFixture struct {
	service      DonationService
	donationRepo *fakeDonationRepository
	foodRepo     *fakeFoodRepository
	achievements *fakeAchievementService
	donorID      uuid.UUID
	claimantID   uuid.UUID
}

func newDonationFixture() *donationFixture {
	donationRepo := newFakeDonationRepository()
	foodRepo := newFakeFoodRepository()
	achievements := &fakeAchievementService{}

	return &donationFixture{
		service:      NewDonationService(donationRepo, foodRepo, achievements, fakeS3{}),
		donationRepo: donationRepo,
		foodRepo:     foodRepo,
		achievements: achievements,
		donorID:      uuid.New(),
		claimantID:   uuid.New(),
	}
}

func (f *donationFixture) addItem(status string, expiry time.Time) *entities.FoodItem {
	item := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     f.donorID,
		Name:       "Apples",
		Category:   "Fruits",
		Quantity:   "1 kg",
		ExpiryDate: expiry,
		Status:     status,
	}
	f.foodRepo.items[item.ID.String()] = item
	return item
}

func (f *donationFixture) addDonation(status string, item *entities.FoodItem) *entities.Donation {
	donation := &entities.Donation{
		ID:             uuid.New(),
		FoodItemID:     item.ID,
		DonorID:        f.donorID,
		Quantity:       item.Quantity,
		PickupLocation: "Community Center",
		Status:         status,
	}
	if status == entities.DonationStatusClaimed {
		claimantID := f.claimantID
		now := time.Now().UTC()
		donation.ClaimantID = &claimantID
		donation.ClaimedAt = &now
	}
	f.donationRepo.donations[donation.ID.String()] = donation
	return donation
}

func TestCreateDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusFresh, time.Now().UTC().AddDate(0, 0, 10))

	res, err := f.service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		FoodItemID:     item.ID.String(),
		PickupLocation: "Community Center",
	}, f.donorID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.DonationStatusAvailable, res.Status)
	assert.Equal(t, "1 kg", res.Quantity) // defaults to the item's quantity
	assert.Equal(t, entities.FoodStatusDonated, item.Status)
	assert.Contains(t, f.achievements.evaluations, "donation")
}

func TestCreateDonationRejectsExpiredItem(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusFresh, time.Now().UTC().AddDate(0, 0, -2))

	_, err := f.service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		FoodItemID:     item.ID.String(),
		PickupLocation: "Community Center",
	}, f.donorID.String())

	assert.ErrorIs(t, err, domain.ErrFoodItemNotDonatable)
}

func TestCreateDonationRejectsConsumedItem(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusConsumed, time.Now().UTC().AddDate(0, 0, 10))

	_, err := f.service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		FoodItemID:     item.ID.String(),
		PickupLocation: "Community Center",
	}, f.donorID.String())

	assert.ErrorIs(t, err, domain.ErrFoodItemNotDonatable)
}

func TestCreateDonationRejectsForeignItem(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusFresh, time.Now().UTC().AddDate(0, 0, 10))

	_, err := f.service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		FoodItemID:     item.ID.String(),
		PickupLocation: "Community Center",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedFoodAccess)
}

func TestClaimDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusAvailable, item)

	err := f.service.ClaimDonation(context.Background(), donation.ID.String(), f.claimantID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.DonationStatusClaimed, donation.Status)
	require.NotNil(t, donation.ClaimantID)
	assert.Equal(t, f.claimantID, *donation.ClaimantID)
	assert.NotNil(t, donation.ClaimedAt)
}

func TestClaimOwnDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusAvailable, item)

	err := f.service.ClaimDonation(context.Background(), donation.ID.String(), f.donorID.String())
	assert.ErrorIs(t, err, domain.ErrClaimOwnDonation)
}

func TestClaimAlreadyClaimedDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusClaimed, item)

	err := f.service.ClaimDonation(context.Background(), donation.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDonationNotAvailable)
}

func TestClaimLosesRace(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusAvailable, item)

	// The conditional update reports zero rows when another claimant
	// got there between our read and the write.
	f.donationRepo.claimRows = 0

	err := f.service.ClaimDonation(context.Background(), donation.ID.String(), f.claimantID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotAvailable)
}

func TestClaimMissingDonation(t *testing.T) {
	f := newDonationFixture()

	err := f.service.ClaimDonation(context.Background(), uuid.NewString(), f.claimantID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestCompleteDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusClaimed, item)

	err := f.service.CompleteDonation(context.Background(), donation.ID.String(), f.donorID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.DonationStatusCompleted, donation.Status)
	assert.NotNil(t, donation.DeliveredAt)
	assert.Contains(t, f.achievements.evaluations, "community")
}

func TestCompleteDonationDonorOnly(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusClaimed, item)

	err := f.service.CompleteDonation(context.Background(), donation.ID.String(), f.claimantID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)
}

func TestCompleteFinishedDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusCancelled, item)

	err := f.service.CompleteDonation(context.Background(), donation.ID.String(), f.donorID.String())
	assert.ErrorIs(t, err, domain.ErrDonationAlreadyFinished)
}

func TestCancelDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusClaimed, item)

	err := f.service.CancelDonation(context.Background(), donation.ID.String(), f.donorID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.DonationStatusCancelled, donation.Status)
	assert.Nil(t, donation.ClaimantID)
	assert.Nil(t, donation.ClaimedAt)
	assert.Equal(t, entities.FoodStatusFresh, item.Status)
}

func TestCancelCompletedDonation(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusCompleted, item)

	err := f.service.CancelDonation(context.Background(), donation.ID.String(), f.donorID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotCancellable)
}

func TestCancelDonationDonorOnly(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusAvailable, item)

	err := f.service.CancelDonation(context.Background(), donation.ID.String(), f.claimantID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)
}

func TestMessagingRequiresParticipant(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusClaimed, item)

	_, err := f.service.SendMessage(context.Background(), donation.ID.String(), domain.SendMessageRequest{
		Content: "When can I pick this up?",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)

	_, err = f.service.GetMessages(context.Background(), donation.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)
}

func TestMessagingBetweenParticipants(t *testing.T) {
	f := newDonationFixture()
	item := f.addItem(entities.FoodStatusDonated, time.Now().UTC().AddDate(0, 0, 10))
	donation := f.addDonation(entities.DonationStatusClaimed, item)

	_, err := f.service.SendMessage(context.Background(), donation.ID.String(), domain.SendMessageRequest{
		Content: "When can I pick this up?",
	}, f.claimantID.String())
	require.NoError(t, err)

	_, err = f.service.SendMessage(context.Background(), donation.ID.String(), domain.SendMessageRequest{
		Content: "Any time after 5pm.",
	}, f.donorID.String())
	require.NoError(t, err)

	messages, err := f.service.GetMessages(context.Background(), donation.ID.String(), f.donorID.String())
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}
