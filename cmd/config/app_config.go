package config

import (
	"FoodSave-Backend/internal/api/handlers"
	"FoodSave-Backend/internal/api/routes"
	"FoodSave-Backend/internal/middleware"
	"FoodSave-Backend/internal/utils"
	"FoodSave-Backend/internal/utils/storage"
	"FoodSave-Backend/pkg/achievement"
	"FoodSave-Backend/pkg/analytics"
	"FoodSave-Backend/pkg/donation"
	"FoodSave-Backend/pkg/food"
	"FoodSave-Backend/pkg/jwt"
	"FoodSave-Backend/pkg/notification"
	"FoodSave-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

type App struct {
	Fiber               *fiber.App
	NotificationService notification.NotificationService
}

func NewApp(db *gorm.DB) (*App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	achievementRepository := achievement.NewAchievementRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	achievementService := achievement.NewAchievementService(achievementRepository)
	foodService := food.NewFoodService(foodRepository, achievementService)
	donationService := donation.NewDonationService(donationRepository, foodRepository, achievementService, s3)
	analyticsService := analytics.NewAnalyticsService(foodRepository)
	notificationService := notification.NewNotificationService(userRepository, foodRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		FoodHandler:        foodHandler,
		DonationHandler:    donationHandler,
		AnalyticsHandler:   analyticsHandler,
		AchievementHandler: achievementHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()

	return &App{
		Fiber:               app,
		NotificationService: notificationService,
	}, nil
}
