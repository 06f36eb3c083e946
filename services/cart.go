package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/botanika-shop/botanika-api/models"
)

type PlantSnapshot struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	ImageUrl      string  `json:"imageUrl"`
}

type CartLine struct {
	ID       uint          `json:"id"`
	Quantity int           `json:"quantity"`
	Plant    PlantSnapshot `json:"plant"`
	Subtotal float64       `json:"subtotal"`
}

type CartSummary struct {
	Items      []CartLine `json:"cartItems"`
	Total      float64    `json:"total"`
	TotalItems int        `json:"totalItems"`
}

type CartService interface {
	AddToCart(plantName string, quantity int, userID uint) (PlantSnapshot, error)
	GetCart(userID uint) (CartSummary, error)
	RemoveItem(cartItemID uint) error
}

// A single cart line never holds more than this many units, no matter how
// many adds get merged into it.
const maxCartLineQuantity = 100

type cartService struct{ db *gorm.DB }

func NewCartService(db *gorm.DB) CartService { return &cartService{db: db} }

// AddToCart checks the requested quantity against available stock and, when
// a user id is given, stores the line server-side: one row per (user, plant)
// pair, incremented in place on repeated adds up to 100 units per line.
// Without a user id the call is
// only an availability check and the client keeps the cart itself. Repeated
// increments are not re-checked against live stock; checkout is where the
// cart is reconciled.
func (s *cartService) AddToCart(plantName string, quantity int, userID uint) (PlantSnapshot, error) {
	var plant models.Plant
	err := s.db.Where("name = ?", plantName).First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PlantSnapshot{}, ErrPlantNotFound
	} else if err != nil {
		return PlantSnapshot{}, err
	}

	if quantity > plant.StockQuantity {
		return PlantSnapshot{}, &InsufficientStockError{Available: plant.StockQuantity}
	}

	if userID != 0 {
		if err := s.mergeLine(userID, plant.ID, quantity); err != nil {
			return PlantSnapshot{}, err
		}
	}

	return PlantSnapshot{
		ID:            plant.ID,
		Name:          plant.Name,
		Price:         plant.Price,
		StockQuantity: plant.StockQuantity,
		ImageUrl:      plant.ImageUrl,
	}, nil
}

// mergeLine folds an add into the (user, plant) line without ever reading
// the quantity into Go code: the increment happens inside a single guarded
// UPDATE, so concurrent adds cannot lose each other's increments. A lost
// first-add race is caught by the unique (user, plant) index and retried as
// an increment.
func (s *cartService) mergeLine(userID, plantID uint, quantity int) error {
	if quantity > maxCartLineQuantity {
		return ErrCartLineLimit
	}

	increment := func() (int64, error) {
		result := s.db.Model(&models.CartItem{}).
			Where("user_id = ? AND plant_id = ? AND quantity + ? <= ?", userID, plantID, quantity, maxCartLineQuantity).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
		return result.RowsAffected, result.Error
	}

	affected, err := increment()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// No row matched: either the line does not exist yet, or the merge
	// would push it past the per-line ceiling.
	var existing int64
	if err := s.db.Model(&models.CartItem{}).
		Where("user_id = ? AND plant_id = ?", userID, plantID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return ErrCartLineLimit
	}

	item := models.CartItem{UserID: userID, PlantID: plantID, Quantity: quantity}
	err = s.db.Create(&item).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Another request created the line between our UPDATE and Create.
		affected, err := increment()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartLineLimit
		}
		return nil
	}
	return err
}

func (s *cartService) GetCart(userID uint) (CartSummary, error) {
	var items []models.CartItem
	err := s.db.Preload("Plant").Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	if err != nil {
		return CartSummary{}, err
	}

	summary := CartSummary{Items: make([]CartLine, 0, len(items))}
	for _, item := range items {
		line := CartLine{
			ID:       item.ID,
			Quantity: item.Quantity,
			Plant: PlantSnapshot{
				ID:            item.Plant.ID,
				Name:          item.Plant.Name,
				Price:         item.Plant.Price,
				StockQuantity: item.Plant.StockQuantity,
				ImageUrl:      item.Plant.ImageUrl,
			},
			Subtotal: float64(item.Quantity) * item.Plant.Price,
		}
		summary.Items = append(summary.Items, line)
		summary.Total += line.Subtotal
		summary.TotalItems += item.Quantity
	}
	return summary, nil
}

func (s *cartService) RemoveItem(cartItemID uint) error {
	result := s.db.Delete(&models.CartItem{}, cartItemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
