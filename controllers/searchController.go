package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botanika-shop/botanika-api/initializers"
	"github.com/botanika-shop/botanika-api/services"
)

func searchService() services.SearchService {
	return services.NewSearchService(initializers.DB)
}

// SearchPlants handles GET /api/search/plants.
func SearchPlants(ctx *gin.Context) {
	params := services.SearchParams{
		Query:      ctx.Query("query"),
		Category:   ctx.Query("category"),
		MinPrice:   ctx.Query("minPrice"),
		MaxPrice:   ctx.Query("maxPrice"),
		Difficulty: ctx.Query("difficulty"),
		Size:       ctx.Query("size"),
	}

	plants, err := searchService().SearchPlants(params)
	if err != nil {
		log.Println("Search error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgSearchFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":      true,
		"query":        params.Query,
		"totalResults": len(plants),
		"plants":       plants,
	})
}

// GetSuggestions handles GET /api/search/suggestions (autocompletion).
func GetSuggestions(ctx *gin.Context) {
	suggestions, err := searchService().Suggestions(ctx.Query("query"))
	if err != nil {
		log.Println("Suggestions error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgSuggestionsFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":     true,
		"suggestions": suggestions,
	})
}
