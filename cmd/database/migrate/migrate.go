package migration

import (
	"Resto-POS-Backend/entities"
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
	if err := db.AutoMigrate(&entities.Category{}, &entities.MenuItem{}, &entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating menu database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}, &entities.StockHistory{}); err != nil {
		log.Fatalf("Error migrating inventory database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DiningTable{}, &entities.Reservation{}); err != nil {
		log.Fatalf("Error migrating table database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}, &entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Payment{}); err != nil {
		log.Fatalf("Error migrating payment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}, &entities.NotificationPreference{}, &entities.Setting{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
