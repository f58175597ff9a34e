package main

import (
	"FoodSave-Backend/cmd/config"
	migration "FoodSave-Backend/cmd/database/migrate"
	"FoodSave-Backend/internal/utils"
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Failed to setup app: %v", err)
	}

	// daily sweep for items close to their expiry date
	c := cron.New()
	_, err = c.AddFunc("0 8 * * *", func() {
		sent := app.NotificationService.SendExpiryAlerts(context.Background())
		log.Printf("expiry alert sweep done, %d alerts sent", sent)
	})
	if err != nil {
		log.Fatalf("Failed to schedule expiry alerts: %v", err)
	}
	c.Start()
	defer c.Stop()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Fiber.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
