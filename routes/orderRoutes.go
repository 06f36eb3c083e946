package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/controllers"
	"github.com/botanika-shop/botanika-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders", middlewares.RequireAuth())
	{
		orders.POST("/checkout", controllers.Checkout)
		orders.GET("", controllers.GetOrders)
	}
}
