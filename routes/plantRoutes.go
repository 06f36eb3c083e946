package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/controllers"
	"github.com/botanika-shop/botanika-api/middlewares"
)

func PlantRoutes(server *gin.Engine) {
	server.GET("/api/categories", controllers.GetCategories)
	server.GET("/api/plants/:id", controllers.GetPlant)

	admin := server.Group("/api", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/categories", controllers.CreateCategory)
		admin.POST("/plants", controllers.CreatePlant)
		admin.POST("/plants/:id/image", controllers.UploadPlantImage)
	}
}
