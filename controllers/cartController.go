package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/initializers"
	"github.com/botanika-shop/botanika-api/models"
	"github.com/botanika-shop/botanika-api/services"
)

func cartService() services.CartService {
	return services.NewCartService(initializers.DB)
}

// AddToCart handles POST /api/cart/add. Without a userId in the body the
// call only checks availability and the client keeps its local cart.
func AddToCart(ctx *gin.Context) {
	var addData models.AddToCartData
	if err := ctx.ShouldBindJSON(&addData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if addData.Quantity == 0 {
		addData.Quantity = 1
	}

	plant, err := cartService().AddToCart(addData.PlantName, addData.Quantity, addData.UserId)
	if err != nil {
		var stockErr *services.InsufficientStockError
		switch {
		case errors.Is(err, services.ErrPlantNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgPlantNotFound)
		case errors.As(err, &stockErr):
			sendErrorResponse(ctx, http.StatusBadRequest,
				fmt.Sprintf("Stock insuffisant. Seulement %d disponible(s)", stockErr.Available))
		case errors.Is(err, services.ErrCartLineLimit):
			sendErrorResponse(ctx, http.StatusBadRequest, "Quantité maximale de 100 par article dépassée")
		default:
			log.Println("Cart add error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": plant.Name + " ajouté au panier",
		"plant":   plant,
	})
}

// GetCart handles GET /api/cart/:userId.
func GetCart(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil || userId < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "ID utilisateur invalide")
		return
	}

	cart, err := cartService().GetCart(uint(userId))
	if err != nil {
		log.Println("Cart fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"cartItems":  cart.Items,
		"total":      cart.Total,
		"totalItems": cart.TotalItems,
	})
}

// RemoveCartItem handles DELETE /api/cart/:cartItemId.
func RemoveCartItem(ctx *gin.Context) {
	cartItemId, err := strconv.Atoi(ctx.Param("cartItemId"))
	if err != nil || cartItemId < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "ID d'article invalide")
		return
	}

	if err := cartService().RemoveItem(uint(cartItemId)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
			return
		}
		log.Println("Cart removal error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": msgCartItemRemoved})
}
