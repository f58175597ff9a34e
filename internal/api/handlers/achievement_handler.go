package handlers

import (
	"FoodSave-Backend/domain"
	"FoodSave-Backend/internal/api/presenters"
	"FoodSave-Backend/pkg/achievement"

	"github.com/gofiber/fiber/v2"
)

type (
	AchievementHandler interface {
		GetUserAchievements(c *fiber.Ctx) error
	}

	achievementHandler struct {
		achievementService achievement.AchievementService
	}
)

func NewAchievementHandler(achievementService achievement.AchievementService) AchievementHandler {
	return &achievementHandler{achievementService: achievementService}
}

func (h *achievementHandler) GetUserAchievements(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	achievements, err := h.achievementService.GetUserAchievements(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCodeFor(err), domain.MessageFailedGetAchievements, err)
	}

	return presenters.SuccessResponse(c, achievements, fiber.StatusOK, domain.MessageSuccessGetAchievements)
}
