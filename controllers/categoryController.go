package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/initializers"
	"github.com/botanika-shop/botanika-api/models"
)

// GetCategories handles GET /api/categories, feeding the search filters.
func GetCategories(ctx *gin.Context) {
	var categories []struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	err := initializers.DB.Model(&models.Category{}).
		Select("id, name, description").
		Order("name ASC").
		Scan(&categories).Error
	if err != nil {
		log.Println("Categories error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Erreur lors de la récupération des catégories")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// CreateCategory handles POST /api/categories (admin only).
func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		log.Println("Category creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"category": gin.H{
			"id":          category.ID,
			"name":        category.Name,
			"description": category.Description,
		},
	})
}
