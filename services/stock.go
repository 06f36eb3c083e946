package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/botanika-shop/botanika-api/models"
)

type StockService interface {
	AdjustStock(plantName, action string, quantity int) (int, error)
}

type stockService struct{ db *gorm.DB }

func NewStockService(db *gorm.DB) StockService { return &stockService{db: db} }

// AdjustStock applies `stock ± quantity` as one conditional UPDATE so two
// concurrent adjustments of the same plant cannot lose each other's write.
// A decrease that would push stock below zero matches no row and fails.
func (s *stockService) AdjustStock(plantName, action string, quantity int) (int, error) {
	var update *gorm.DB
	switch action {
	case "increase":
		update = s.db.Model(&models.Plant{}).
			Where("name = ?", plantName).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	case "decrease":
		update = s.db.Model(&models.Plant{}).
			Where("name = ? AND stock_quantity >= ?", plantName, quantity).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	default:
		return 0, ErrInvalidAction
	}
	if update.Error != nil {
		return 0, update.Error
	}

	var plant models.Plant
	err := s.db.Where("name = ?", plantName).First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrPlantNotFound
	} else if err != nil {
		return 0, err
	}

	// The plant exists but the guarded decrease touched nothing: not
	// enough stock on hand.
	if update.RowsAffected == 0 {
		return 0, ErrInsufficientStock
	}
	return plant.StockQuantity, nil
}
