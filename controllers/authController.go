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

const (
	// Standard response messages
	msgInvalidInput        = "Requête invalide"
	msgInvalidData         = "Données invalides"
	msgEmailTaken          = "Cet email est déjà enregistré"
	msgInvalidCredentials  = "Email ou mot de passe incorrect"
	msgInternalServerError = "Erreur interne du serveur"
	msgRegistrationDone    = "Inscription réussie ! Vous pouvez maintenant vous connecter."
	msgLoginDone           = "Connexion réussie"
	msgEmailRequired       = "Email requis"
	msgPasswordRequired    = "Mot de passe requis"
	msgPlantNotFound       = "Plante non trouvée"
	msgCartItemNotFound    = "Article non trouvé dans le panier"
	msgCartItemRemoved     = "Article supprimé du panier"
	msgCartEmpty           = "Le panier est vide"
	msgSearchFailed        = "Erreur lors de la recherche"
	msgSuggestionsFailed   = "Erreur lors de la génération des suggestions"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "message": message})
}

func authService() services.AuthService {
	return services.NewAuthService(initializers.DB)
}

// Register handles POST /api/register.
func Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := authService().Register(registerData)
	if err != nil {
		var validationErrs services.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
				"success": false,
				"message": msgInvalidData,
				"errors":  []string(validationErrs),
			})
		case errors.Is(err, services.ErrEmailTaken):
			sendErrorResponse(ctx, http.StatusBadRequest, msgEmailTaken)
		default:
			log.Println("Registration error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":     true,
		"message":     msgRegistrationDone,
		"userId":      user.ID,
		"redirectUrl": "/home",
	})
}

// Login handles POST /api/login. A wrong password and an unknown email get
// the same generic message.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if loginData.Email == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgEmailRequired)
		return
	}
	if loginData.Password == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgPasswordRequired)
		return
	}

	user, token, err := authService().Login(loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		log.Println("Login error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":     true,
		"message":     msgLoginDone,
		"redirectUrl": "/home",
		"token":       token,
		"user": gin.H{
			"id":        user.ID,
			"nom":       user.Nom,
			"email":     user.Email,
			"adresse":   user.Adresse,
			"telephone": user.Telephone,
		},
	})
}
