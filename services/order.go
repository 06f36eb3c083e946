package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/botanika-shop/botanika-api/models"
	"github.com/botanika-shop/botanika-api/utils"
)

type OrderService interface {
	Checkout(userID uint, data models.CheckoutData) (models.Order, error)
	GetOrders(userID uint) ([]models.Order, error)
}

type orderService struct{ db *gorm.DB }

func NewOrderService(db *gorm.DB) OrderService { return &orderService{db: db} }

// Checkout turns the user's cart into an order inside one transaction. Each
// line's stock is taken with a guarded decrement; any shortage aborts the
// whole transaction, leaving stock and cart untouched.
func (s *orderService) Checkout(userID uint, data models.CheckoutData) (models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Plant").Where("user_id = ?", userID).Order("id asc").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			result := tx.Model(&models.Plant{}).
				Where("id = ? AND stock_quantity >= ?", item.PlantID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInsufficientStock
			}

			lineTotal := float64(item.Quantity) * item.Plant.Price
			total += lineTotal
			orderItems = append(orderItems, models.OrderItem{
				PlantID:    item.PlantID,
				Quantity:   item.Quantity,
				UnitPrice:  item.Plant.Price,
				TotalPrice: lineTotal,
			})
		}

		order = models.Order{
			UserID:          userID,
			Reference:       "ORDER-" + uuid.NewString(),
			TotalAmount:     total,
			Status:          "pending",
			ShippingAddress: data.ShippingAddress,
			PaymentMethod:   data.PaymentMethod,
			PaymentStatus:   "pending",
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		order.OrderItems = orderItems

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	s.notify(order)
	return order, nil
}

func (s *orderService) GetOrders(userID uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := s.db.Preload("OrderItems").Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// notify sends the confirmation email and the back-office webhook. Both are
// best-effort: the order is already committed, failures only get logged.
func (s *orderService) notify(order models.Order) {
	var user models.User
	if err := s.db.First(&user, order.UserID).Error; err != nil {
		log.Println("Order notification: user lookup failed:", err)
		return
	}

	if os.Getenv("FROM_EMAIL") != "" {
		if err := utils.SendOrderConfirmationEmail(user, order); err != nil {
			log.Println("Order confirmation email failed:", err)
		}
	}

	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}
	resp, err := resty.New().SetTimeout(10*time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"reference":   order.Reference,
			"orderId":     order.ID,
			"userId":      order.UserID,
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
		}).
		Post(webhookURL)
	if err != nil {
		log.Println("Order webhook failed:", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Println("Order webhook rejected:", fmt.Sprintf("status %d", resp.StatusCode()))
	}
}
