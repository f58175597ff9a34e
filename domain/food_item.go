package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessUpdateStatus      = "food item status updated successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedUpdateStatus      = "failed to update food item status"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound       = errors.New("food item not found")
	ErrInvalidExpiryDate      = errors.New("invalid expiry date")
	ErrInvalidFoodStatus      = errors.New("status must be consumed or wasted")
	ErrUnauthorizedFoodAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name         string `json:"name" validate:"required,max=100"`
		Category     string `json:"category" validate:"required,oneof=Fruits Vegetables Dairy Meat Grains Beverages Other"`
		Quantity     string `json:"quantity" validate:"omitempty,max=50"`
		PurchaseDate string `json:"purchase_date" validate:"omitempty"`
		ExpiryDate   string `json:"expiry_date" validate:"required"`
		Notes        string `json:"notes" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name       string `json:"name" validate:"omitempty,max=100"`
		Category   string `json:"category" validate:"omitempty,oneof=Fruits Vegetables Dairy Meat Grains Beverages Other"`
		Quantity   string `json:"quantity" validate:"omitempty,max=50"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	UpdateFoodStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=consumed wasted"`
	}

	FoodItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Category        string    `json:"category"`
		Quantity        string    `json:"quantity"`
		PurchaseDate    time.Time `json:"purchase_date"`
		ExpiryDate      time.Time `json:"expiry_date"`
		Status          string    `json:"status"`
		DaysUntilExpiry int       `json:"days_until_expiry"`
		Notes           string    `json:"notes,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems        int                 `json:"total_items"`
		FreshCount        int                 `json:"fresh_count"`
		ExpiringSoonCount int                 `json:"expiring_soon_count"`
		ExpiredCount      int                 `json:"expired_count"`
		ConsumedCount     int                 `json:"consumed_count"`
		WastedCount       int                 `json:"wasted_count"`
		DonatedCount      int                 `json:"donated_count"`
		ExpiringSoon      []*FoodItemResponse `json:"expiring_soon"`
	}
)
