package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID          uint        `json:"userId"`
	Reference       string      `json:"reference"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status" gorm:"default:pending"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentStatus   string      `json:"paymentStatus" gorm:"default:pending"`
	OrderItems      []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	gorm.Model
	OrderID    uint    `json:"orderId"`
	PlantID    uint    `json:"plantId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

type CheckoutData struct {
	ShippingAddress string `json:"shippingAddress" binding:"omitempty,max=500"`
	PaymentMethod   string `json:"paymentMethod" binding:"required,oneof=cash card bank_transfer paypal"`
}
