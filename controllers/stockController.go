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

func stockService() services.StockService {
	return services.NewStockService(initializers.DB)
}

// AdjustStock handles PUT /plantes/stock.
func AdjustStock(ctx *gin.Context) {
	var adjustData models.AdjustStockData
	if err := ctx.ShouldBindJSON(&adjustData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	newStock, err := stockService().AdjustStock(adjustData.Nom, adjustData.Action, adjustData.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlantNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgPlantNotFound)
		case errors.Is(err, services.ErrInsufficientStock):
			sendErrorResponse(ctx, http.StatusBadRequest, "Stock insuffisant")
		case errors.Is(err, services.ErrInvalidAction):
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		default:
			log.Println("Stock adjustment error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":   true,
		"newStock":  newStock,
		"plantName": adjustData.Nom,
	})
}
