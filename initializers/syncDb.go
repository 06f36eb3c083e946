package initializers

import (
	"log"

	"github.com/botanika-shop/botanika-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Category{}, &models.Plant{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{})
	log.Println("Database synced successfully.")
	SeedCatalog()
}
