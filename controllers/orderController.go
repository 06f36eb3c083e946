package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/initializers"
	"github.com/botanika-shop/botanika-api/models"
	"github.com/botanika-shop/botanika-api/services"
)

func orderService() services.OrderService {
	return services.NewOrderService(initializers.DB)
}

// Checkout handles POST /api/orders/checkout for the authenticated user.
func Checkout(ctx *gin.Context) {
	var checkoutData models.CheckoutData
	if err := ctx.ShouldBindJSON(&checkoutData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID := ctx.GetUint("userID")
	order, err := orderService().Checkout(userID, checkoutData)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
		case errors.Is(err, services.ErrInsufficientStock):
			sendErrorResponse(ctx, http.StatusBadRequest, "Stock insuffisant pour un des articles du panier")
		default:
			log.Println("Checkout error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Commande créée avec succès",
		"order": gin.H{
			"id":          order.ID,
			"reference":   order.Reference,
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
		},
	})
}

// GetOrders handles GET /api/orders for the authenticated user.
func GetOrders(ctx *gin.Context) {
	userID := ctx.GetUint("userID")
	orders, err := orderService().GetOrders(userID)
	if err != nil {
		log.Println("Orders fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "orders": orders})
}
