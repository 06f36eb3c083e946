package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/api/status", controllers.GetStatus)
}
