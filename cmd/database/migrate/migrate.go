package migration

import (
	"FoodSave-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationMessage{}); err != nil {
		log.Fatalf("Error migrating donation message database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Achievement{}); err != nil {
		log.Fatalf("Error migrating achievement database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
