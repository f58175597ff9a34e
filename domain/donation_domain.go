package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDonation   = "donation created successfully"
	MessageSuccessGetDonations     = "donations retrieved successfully"
	MessageSuccessClaimDonation    = "donation claimed successfully"
	MessageSuccessCompleteDonation = "donation marked as completed"
	MessageSuccessCancelDonation   = "donation cancelled successfully"
	MessageSuccessGetContact       = "contact information retrieved successfully"
	MessageSuccessSendMessage      = "message sent successfully"
	MessageSuccessGetMessages      = "messages retrieved successfully"

	MessageFailedCreateDonation   = "failed to create donation"
	MessageFailedGetDonations     = "failed to retrieve donations"
	MessageFailedClaimDonation    = "failed to claim donation"
	MessageFailedCompleteDonation = "failed to complete donation"
	MessageFailedCancelDonation   = "failed to cancel donation"
	MessageFailedGetContact       = "failed to retrieve contact information"
	MessageFailedSendMessage      = "failed to send message"
	MessageFailedGetMessages      = "failed to retrieve messages"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrDonationNotAvailable       = errors.New("donation is no longer available")
	ErrClaimOwnDonation           = errors.New("cannot claim your own donation")
	ErrDonationAlreadyFinished    = errors.New("donation is already completed or cancelled")
	ErrDonationNotCancellable     = errors.New("only available or claimed donations can be cancelled")
	ErrFoodItemNotDonatable       = errors.New("only fresh or expiring food items can be donated")
)

type (
	CreateDonationRequest struct {
		FoodItemID         string                `json:"food_item_id" form:"food_item_id" validate:"required,uuid"`
		Quantity           string                `json:"quantity" form:"quantity" validate:"omitempty,max=50"`
		Description        string                `json:"description" form:"description" validate:"omitempty"`
		PickupLocation     string                `json:"pickup_location" form:"pickup_location" validate:"required,max=200"`
		PickupInstructions string                `json:"pickup_instructions" form:"pickup_instructions" validate:"omitempty"`
		FoodImage          *multipart.FileHeader `json:"food_image" form:"food_image"`
	}

	DonationResponse struct {
		ID                 string     `json:"id"`
		FoodItemID         string     `json:"food_item_id"`
		FoodName           string     `json:"food_name"`
		FoodCategory       string     `json:"food_category"`
		ExpiryDate         time.Time  `json:"expiry_date"`
		DonorID            string     `json:"donor_id"`
		DonorUsername      string     `json:"donor_username"`
		ClaimantID         string     `json:"claimant_id,omitempty"`
		ClaimantUsername   string     `json:"claimant_username,omitempty"`
		Quantity           string     `json:"quantity"`
		Description        string     `json:"description,omitempty"`
		PickupLocation     string     `json:"pickup_location"`
		PickupInstructions string     `json:"pickup_instructions,omitempty"`
		Status             string     `json:"status"`
		ImageURL           string     `json:"image_url,omitempty"`
		CreatedAt          time.Time  `json:"created_at"`
		ClaimedAt          *time.Time `json:"claimed_at,omitempty"`
		DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	}

	NearbyDonationResponse struct {
		ID             string    `json:"id"`
		FoodName       string    `json:"food_name"`
		Quantity       string    `json:"quantity"`
		Description    string    `json:"description,omitempty"`
		PickupLocation string    `json:"pickup_location"`
		Donor          string    `json:"donor"`
		CreatedAt      time.Time `json:"created_at"`
	}

	DonationContactResponse struct {
		DonationID       string `json:"donation_id"`
		DonorUsername    string `json:"donor_username"`
		DonorEmail       string `json:"donor_email"`
		DonorLocation    string `json:"donor_location,omitempty"`
		ClaimantUsername string `json:"claimant_username,omitempty"`
		ClaimantEmail    string `json:"claimant_email,omitempty"`
		PickupLocation   string `json:"pickup_location"`
	}

	SendMessageRequest struct {
		Content string `json:"content" validate:"required,max=2000"`
	}

	DonationMessageResponse struct {
		ID             string    `json:"id"`
		DonationID     string    `json:"donation_id"`
		SenderID       string    `json:"sender_id"`
		SenderUsername string    `json:"sender_username"`
		Content        string    `json:"content"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
