package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/controllers"
)

func SearchRoutes(server *gin.Engine) {
	search := server.Group("/api/search")
	{
		search.GET("/plants", controllers.SearchPlants)
		search.GET("/suggestions", controllers.GetSuggestions)
	}
}
