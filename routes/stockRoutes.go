package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/controllers"
)

func StockRoutes(server *gin.Engine) {
	server.PUT("/plantes/stock", controllers.AdjustStock)
}
