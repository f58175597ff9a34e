package handlers

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/internal/api/presenters"
	"FoodSave-Backend/pkg/analytics"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetDashboard(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
		GetEnvironmentalImpact(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	dashboard, err := h.analyticsService.GetDashboard(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, dashboard, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}

func (h *analyticsHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.analyticsService.GetUserStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *analyticsHandler) GetEnvironmentalImpact(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	impact, err := h.analyticsService.GetEnvironmentalImpact(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetImpact, err)
	}

	return presenters.SuccessResponse(c, impact, fiber.StatusOK, domain.MessageSuccessGetImpact)
}
