package donation

import (
	"FoodSave-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateDonation(ctx context.Context, donation *entities.Donation) error
		GetAvailableDonations(ctx context.Context, page, limit int) ([]*entities.Donation, int64, error)
		GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error)
		GetDonationsByClaimant(ctx context.Context, claimantID string) ([]*entities.Donation, error)
		ClaimDonation(ctx context.Context, id string, claimantID string, claimedAt time.Time) (int64, error)
		CountByDonor(ctx context.Context, donorID string, statuses ...string) (int64, error)
		AddMessage(ctx context.Context, message *entities.DonationMessage) error
		GetMessages(ctx context.Context, donationID string) ([]*entities.DonationMessage, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Donor").
		Preload("Claimant").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) UpdateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

func (r *donationRepository) GetAvailableDonations(ctx context.Context, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Where("status = ?", entities.DonationStatusAvailable)

	if err := query.Model(&entities.Donation{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("FoodItem").
		Preload("Donor").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Claimant").
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationsByClaimant(ctx context.Context, claimantID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("Donor").
		Where("claimant_id = ?", claimantID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// ClaimDonation flips an available donation to claimed in one conditional
// UPDATE. Rows affected is 0 when another claimant got there first.
func (r *donationRepository) ClaimDonation(ctx context.Context, id string, claimantID string, claimedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, entities.DonationStatusAvailable).
		Updates(map[string]interface{}{
			"status":      entities.DonationStatusClaimed,
			"claimant_id": claimantID,
			"claimed_at":  claimedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *donationRepository) CountByDonor(ctx context.Context, donorID string, statuses ...string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Donation{}).
		Where("donor_id = ?", donorID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *donationRepository) AddMessage(ctx context.Context, message *entities.DonationMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *donationRepository) GetMessages(ctx context.Context, donationID string) ([]*entities.DonationMessage, error) {
	var messages []*entities.DonationMessage
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("donation_id = ?", donationID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
