package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/initializers"
	"github.com/botanika-shop/botanika-api/middlewares"
	"github.com/botanika-shop/botanika-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://www.botanika.shop"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.SecurityHeaders())
	server.Use(middlewares.SanitizeBody())

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.SearchRoutes(server)
	routes.PlantRoutes(server)
	routes.CartRoutes(server)
	routes.StockRoutes(server)
	routes.OrderRoutes(server)

	server.Run()
}
