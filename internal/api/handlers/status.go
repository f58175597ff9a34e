package handlers

import (
	"FoodSave-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusCodeFor maps service errors onto HTTP status codes: missing records
// are 404, acting on someone else's resource is 403, everything else is a
// plain bad request.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedFoodAccess),
		errors.Is(err, domain.ErrUnauthorizedDonationAccess),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
