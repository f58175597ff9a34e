package routes

import (
	"FoodSave-Backend/internal/api/handlers"
	"FoodSave-Backend/internal/middleware"
	"FoodSave-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	FoodHandler        handlers.FoodHandler
	DonationHandler    handlers.DonationHandler
	AnalyticsHandler   handlers.AnalyticsHandler
	AchievementHandler handlers.AchievementHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Donations()
	c.Analytics()
	c.Achievements()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)
	foodItems.Get("/all", c.FoodHandler.GetAllFoodItems)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	// consumed / wasted marking
	foodItems.Patch("/:id/status", c.FoodHandler.UpdateStatus)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	donations.Get("/mine", c.DonationHandler.GetMyDonations)
	donations.Get("/claims", c.DonationHandler.GetMyClaims)
	donations.Get("/nearby", c.DonationHandler.GetNearbyDonations)

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetAvailableDonations)

	donations.Post("/:id/claim", c.DonationHandler.ClaimDonation)
	donations.Post("/:id/complete", c.DonationHandler.CompleteDonation)
	donations.Post("/:id/cancel", c.DonationHandler.CancelDonation)
	donations.Get("/:id/contact", c.DonationHandler.GetContact)
	donations.Post("/:id/messages", c.DonationHandler.SendMessage)
	donations.Get("/:id/messages", c.DonationHandler.GetMessages)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))
	analytics.Get("/dashboard", c.AnalyticsHandler.GetDashboard)
	analytics.Get("/stats", c.AnalyticsHandler.GetStats)
	analytics.Get("/environmental-impact", c.AnalyticsHandler.GetEnvironmentalImpact)
}

func (c *Config) Achievements() {
	achievements := c.App.Group("/api/v1/achievements", c.Middleware.AuthMiddleware(c.JWTService))
	achievements.Get("", c.AchievementHandler.GetUserAchievements)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
