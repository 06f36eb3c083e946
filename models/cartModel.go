package models

import "time"

// CartItem keeps one row per (user, plant) pair, enforced by the composite
// unique index. There is no DeletedAt column: removed lines are deleted for
// real so a later re-add never collides with a tombstone.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_cart_user_plant"`
	PlantID   uint      `json:"plantId" gorm:"uniqueIndex:idx_cart_user_plant"`
	Quantity  int       `json:"quantity"`
	Plant     Plant     `json:"plant" gorm:"foreignKey:PlantID"`
}

// AddToCartData is the body of POST /api/cart/add. UserId is optional:
// without it the call is only a stock-availability check and the client
// keeps the cart in local storage.
type AddToCartData struct {
	PlantName string `json:"plantName" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=1,lte=100"`
	UserId    uint   `json:"userId"`
}
