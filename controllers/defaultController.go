package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Bienvenue sur l'API Botanika"})
}

// GetStatus handles GET /api/status.
func GetStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":   "API fonctionnelle avec authentification, recherche et panier",
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"features":  []string{"inscription", "connexion", "hashage-mot-de-passe", "recherche", "panier", "commandes"},
	})
}
