package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/api/cart/add", controllers.AddToCart)
	server.GET("/api/cart/:userId", controllers.GetCart)
	server.DELETE("/api/cart/:cartItemId", controllers.RemoveCartItem)
}
