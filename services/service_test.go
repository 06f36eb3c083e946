package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/botanika-shop/botanika-api/models"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database per test. The shared cache
// keeps every pooled connection on the same database while the unique name
// isolates tests from each other.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Category{}, &models.Plant{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createPlant(t *testing.T, db *gorm.DB, plant models.Plant) models.Plant {
	t.Helper()
	if err := db.Create(&plant).Error; err != nil {
		t.Fatalf("failed to create plant %q: %v", plant.Name, err)
	}
	return plant
}

func plantStock(t *testing.T, db *gorm.DB, plantID uint) int {
	t.Helper()
	var plant models.Plant
	if err := db.First(&plant, plantID).Error; err != nil {
		t.Fatalf("failed to reload plant %d: %v", plantID, err)
	}
	return plant.StockQuantity
}
