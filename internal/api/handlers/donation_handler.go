package handlers

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/internal/api/presenters"
	"FoodSave-Backend/pkg/donation"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetAvailableDonations(c *fiber.Ctx) error
		GetMyDonations(c *fiber.Ctx) error
		GetMyClaims(c *fiber.Ctx) error
		ClaimDonation(c *fiber.Ctx) error
		CompleteDonation(c *fiber.Ctx) error
		CancelDonation(c *fiber.Ctx) error
		GetContact(c *fiber.Ctx) error
		SendMessage(c *fiber.Ctx) error
		GetMessages(c *fiber.Ctx) error
		GetNearbyDonations(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// optional photo, multipart only
	if file, err := c.FormFile("food_image"); err == nil {
		req.FoodImage = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetAvailableDonations(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	donations, count, err := h.donationService.GetAvailableDonations(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetMyDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	donations, err := h.donationService.GetMyDonations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetMyClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	claims, err := h.donationService.GetMyClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, claims, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) ClaimDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.ClaimDonation(c.Context(), donationID, userID); err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedClaimDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClaimDonation)
}

func (h *donationHandler) CompleteDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.CompleteDonation(c.Context(), donationID, userID); err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedCompleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteDonation)
}

func (h *donationHandler) CancelDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.CancelDonation(c.Context(), donationID, userID); err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedCancelDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelDonation)
}

func (h *donationHandler) GetContact(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	contact, err := h.donationService.GetContact(c.Context(), donationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetContact, err)
	}

	return presenters.SuccessResponse(c, contact, fiber.StatusOK, domain.MessageSuccessGetContact)
}

func (h *donationHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")
	req := new(domain.SendMessageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	res, err := h.donationService.SendMessage(c.Context(), donationID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSendMessage)
}

func (h *donationHandler) GetMessages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	messages, err := h.donationService.GetMessages(c.Context(), donationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetMessages, err)
	}

	return presenters.SuccessResponse(c, messages, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *donationHandler) GetNearbyDonations(c *fiber.Ctx) error {
	donations, err := h.donationService.GetNearbyDonations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}
