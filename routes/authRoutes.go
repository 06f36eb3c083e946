package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/controllers"
	"github.com/botanika-shop/botanika-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	registerLimiter := middlewares.NewRateLimiter(time.Hour, 5,
		"Trop de tentatives d'inscription. Réessayez plus tard.")
	loginLimiter := middlewares.NewRateLimiter(15*time.Minute, 5,
		"Trop de tentatives de connexion. Réessayez plus tard.")

	server.POST("/api/register", registerLimiter.Handler(), controllers.Register)
	server.POST("/api/login", loginLimiter.Handler(), controllers.Login)
}
