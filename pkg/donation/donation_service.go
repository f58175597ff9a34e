package donation

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/entities"
	"FoodSave-Backend/internal/utils/storage"
	"FoodSave-Backend/pkg/achievement"
	"FoodSave-Backend/pkg/food"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const nearbyDonationLimit = 20

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error)
		GetAvailableDonations(ctx context.Context, page, limit int) ([]*domain.DonationResponse, int64, error)
		GetMyDonations(ctx context.Context, userID string) ([]*domain.DonationResponse, error)
		GetMyClaims(ctx context.Context, userID string) ([]*domain.DonationResponse, error)
		ClaimDonation(ctx context.Context, id string, userID string) error
		CompleteDonation(ctx context.Context, id string, userID string) error
		CancelDonation(ctx context.Context, id string, userID string) error
		GetContact(ctx context.Context, id string, userID string) (*domain.DonationContactResponse, error)
		SendMessage(ctx context.Context, id string, req domain.SendMessageRequest, userID string) (*domain.DonationMessageResponse, error)
		GetMessages(ctx context.Context, id string, userID string) ([]*domain.DonationMessageResponse, error)
		GetNearbyDonations(ctx context.Context) ([]*domain.NearbyDonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		foodRepository     food.FoodRepository
		achievementService achievement.AchievementService
		s3                 storage.AwsS3
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	foodRepository food.FoodRepository,
	achievementService achievement.AchievementService,
	s3 storage.AwsS3,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		foodRepository:     foodRepository,
		achievementService: achievementService,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedFoodAccess
	}

	status := food.DetermineStatus(foodItem.ExpiryDate, foodItem.Status, time.Now().UTC())
	if status != entities.FoodStatusFresh && status != entities.FoodStatusExpiringSoon {
		return nil, domain.ErrFoodItemNotDonatable
	}

	donorUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donationID := uuid.New()

	var imageURL string
	if req.FoodImage != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donationID.String()),
			req.FoodImage,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	quantity := req.Quantity
	if quantity == "" {
		quantity = foodItem.Quantity
	}

	donation := &entities.Donation{
		ID:                 donationID,
		FoodItemID:         foodItem.ID,
		DonorID:            donorUUID,
		Quantity:           quantity,
		Description:        req.Description,
		PickupLocation:     req.PickupLocation,
		PickupInstructions: req.PickupInstructions,
		Status:             entities.DonationStatusAvailable,
		ImageURL:           imageURL,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	foodItem.Status = entities.FoodStatusDonated
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return nil, err
	}

	s.checkDonationAchievements(ctx, userID)

	created, err := s.donationRepository.GetDonationByID(ctx, donationID.String())
	if err != nil {
		return nil, err
	}

	return toDonationResponse(created), nil
}

func (s *donationService) GetAvailableDonations(ctx context.Context, page, limit int) ([]*domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetAvailableDonations(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation))
	}
	return result, count, nil
}

func (s *donationService) GetMyDonations(ctx context.Context, userID string) ([]*domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetDonationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation))
	}
	return result, nil
}

func (s *donationService) GetMyClaims(ctx context.Context, userID string) ([]*domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetDonationsByClaimant(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation))
	}
	return result, nil
}

func (s *donationService) ClaimDonation(ctx context.Context, id string, userID string) error {
	donation, err := s.getDonation(ctx, id)
	if err != nil {
		return err
	}

	if donation.Status != entities.DonationStatusAvailable {
		return domain.ErrDonationNotAvailable
	}
	if donation.DonorID.String() == userID {
		return domain.ErrClaimOwnDonation
	}

	rows, err := s.donationRepository.ClaimDonation(ctx, id, userID, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		// someone else claimed it between our read and the update
		return domain.ErrDonationNotAvailable
	}

	return nil
}

func (s *donationService) CompleteDonation(ctx context.Context, id string, userID string) error {
	donation, err := s.getDonation(ctx, id)
	if err != nil {
		return err
	}

	if donation.DonorID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}
	if donation.Status == entities.DonationStatusCompleted || donation.Status == entities.DonationStatusCancelled {
		return domain.ErrDonationAlreadyFinished
	}

	now := time.Now().UTC()
	donation.Status = entities.DonationStatusCompleted
	donation.DeliveredAt = &now

	if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
		return err
	}

	s.checkCommunityAchievements(ctx, userID)

	return nil
}

func (s *donationService) CancelDonation(ctx context.Context, id string, userID string) error {
	donation, err := s.getDonation(ctx, id)
	if err != nil {
		return err
	}

	if donation.DonorID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}
	if donation.Status != entities.DonationStatusAvailable && donation.Status != entities.DonationStatusClaimed {
		return domain.ErrDonationNotCancellable
	}

	donation.Status = entities.DonationStatusCancelled
	donation.ClaimantID = nil
	donation.ClaimedAt = nil

	if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
		return err
	}

	// The item goes back to fresh; the next read re-runs the date-based
	// classifier and corrects it if the item has since expired.
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, donation.FoodItemID.String())
	if err == nil {
		foodItem.Status = entities.FoodStatusFresh
		if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
			return err
		}
	}

	return nil
}

func (s *donationService) GetContact(ctx context.Context, id string, userID string) (*domain.DonationContactResponse, error) {
	donation, err := s.getDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isParticipant(donation, userID) {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	contact := &domain.DonationContactResponse{
		DonationID:     donation.ID.String(),
		PickupLocation: donation.PickupLocation,
	}
	if donation.Donor != nil {
		contact.DonorUsername = donation.Donor.Username
		contact.DonorEmail = donation.Donor.Email
		contact.DonorLocation = donation.Donor.Location
	}
	if donation.Claimant != nil {
		contact.ClaimantUsername = donation.Claimant.Username
		contact.ClaimantEmail = donation.Claimant.Email
	}

	return contact, nil
}

func (s *donationService) SendMessage(ctx context.Context, id string, req domain.SendMessageRequest, userID string) (*domain.DonationMessageResponse, error) {
	donation, err := s.getDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isParticipant(donation, userID) {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	senderUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	message := &entities.DonationMessage{
		ID:         uuid.New(),
		DonationID: donation.ID,
		SenderID:   senderUUID,
		Content:    req.Content,
	}

	if err := s.donationRepository.AddMessage(ctx, message); err != nil {
		return nil, err
	}

	return &domain.DonationMessageResponse{
		ID:         message.ID.String(),
		DonationID: message.DonationID.String(),
		SenderID:   message.SenderID.String(),
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	}, nil
}

func (s *donationService) GetMessages(ctx context.Context, id string, userID string) ([]*domain.DonationMessageResponse, error) {
	donation, err := s.getDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isParticipant(donation, userID) {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	messages, err := s.donationRepository.GetMessages(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationMessageResponse, 0, len(messages))
	for _, message := range messages {
		res := &domain.DonationMessageResponse{
			ID:         message.ID.String(),
			DonationID: message.DonationID.String(),
			SenderID:   message.SenderID.String(),
			Content:    message.Content,
			CreatedAt:  message.CreatedAt,
		}
		if message.Sender != nil {
			res.SenderUsername = message.Sender.Username
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *donationService) GetNearbyDonations(ctx context.Context) ([]*domain.NearbyDonationResponse, error) {
	donations, _, err := s.donationRepository.GetAvailableDonations(ctx, 1, nearbyDonationLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.NearbyDonationResponse, 0, len(donations))
	for _, donation := range donations {
		res := &domain.NearbyDonationResponse{
			ID:             donation.ID.String(),
			Quantity:       donation.Quantity,
			Description:    donation.Description,
			PickupLocation: donation.PickupLocation,
			CreatedAt:      donation.CreatedAt,
		}
		if donation.FoodItem != nil {
			res.FoodName = donation.FoodItem.Name
		}
		if donation.Donor != nil {
			res.Donor = donation.Donor.Username
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *donationService) getDonation(ctx context.Context, id string) (*entities.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return donation, nil
}

func isParticipant(donation *entities.Donation, userID string) bool {
	if donation.DonorID.String() == userID {
		return true
	}
	return donation.ClaimantID != nil && donation.ClaimantID.String() == userID
}

func (s *donationService) checkDonationAchievements(ctx context.Context, userID string) {
	donations, err := s.donationRepository.CountByDonor(ctx, userID)
	if err != nil {
		log.Printf("achievement check failed for user %s: %v", userID, err)
		return
	}
	if _, err := s.achievementService.Evaluate(ctx, userID, achievement.CategoryDonation, int(donations)); err != nil {
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

func (s *donationService) checkCommunityAchievements(ctx context.Context, userID string) {
	completed, err := s.donationRepository.CountByDonor(ctx, userID, entities.DonationStatusCompleted)
	if err != nil {
		log.Printf("achievement check failed for user %s: %v", userID, err)
		return
	}
	if _, err := s.achievementService.Evaluate(ctx, userID, achievement.CategoryCommunity, int(completed)); err != nil {
		log.Printf("achievement check failed for user %s: %v", userID, err)
	}
}

func toDonationResponse(donation *entities.Donation) *domain.DonationResponse {
	res := &domain.DonationResponse{
		ID:                 donation.ID.String(),
		FoodItemID:         donation.FoodItemID.String(),
		DonorID:            donation.DonorID.String(),
		Quantity:           donation.Quantity,
		Description:        donation.Description,
		PickupLocation:     donation.PickupLocation,
		PickupInstructions: donation.PickupInstructions,
		Status:             donation.Status,
		ImageURL:           donation.ImageURL,
		CreatedAt:          donation.CreatedAt,
		ClaimedAt:          donation.ClaimedAt,
		DeliveredAt:        donation.DeliveredAt,
	}
	if donation.FoodItem != nil {
		res.FoodName = donation.FoodItem.Name
		res.FoodCategory = donation.FoodItem.Category
		res.ExpiryDate = donation.FoodItem.ExpiryDate
	}
	if donation.Donor != nil {
		res.DonorUsername = donation.Donor.Username
	}
	if donation.ClaimantID != nil {
		res.ClaimantID = donation.ClaimantID.String()
	}
	if donation.Claimant != nil {
		res.ClaimantUsername = donation.Claimant.Username
	}
	return res
}
