package services

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/botanika-shop/botanika-api/models"
)

const (
	searchResultLimit = 50
	suggestionLimit   = 10
)

// SearchParams mirrors the query string of GET /api/search/plants. Price
// bounds stay strings so an absent parameter can be told apart from zero.
type SearchParams struct {
	Query      string
	Category   string
	MinPrice   string
	MaxPrice   string
	Difficulty string
	Size       string
}

type PlantResult struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	ScientificName    string  `json:"scientificName"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	StockQuantity     int     `json:"stockQuantity"`
	ImageUrl          string  `json:"imageUrl"`
	CareInstructions  string  `json:"careInstructions"`
	LightRequirements string  `json:"lightRequirements"`
	WaterFrequency    string  `json:"waterFrequency"`
	Size              string  `json:"size"`
	DifficultyLevel   string  `json:"difficultyLevel"`
	CategoryName      *string `json:"category"`
	CategoryID        *uint   `json:"categoryId"`
}

type Suggestion struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientificName"`
	DisplayText    string `json:"displayText"`
}

type SearchService interface {
	SearchPlants(params SearchParams) ([]PlantResult, error)
	Suggestions(query string) ([]Suggestion, error)
}

type searchService struct{ db *gorm.DB }

func NewSearchService(db *gorm.DB) SearchService { return &searchService{db: db} }

// SearchPlants builds a conjunctive filter over the available plants and,
// when a text query is present, orders by relevance: name prefix first,
// name substring second, any other match last. Matching lower-cases both
// sides explicitly instead of trusting the store's LIKE collation.
func (s *searchService) SearchPlants(params SearchParams) ([]PlantResult, error) {
	query := s.db.Model(&models.Plant{}).
		Select("plants.id, plants.name, plants.scientific_name, plants.description, plants.price, plants.stock_quantity, plants.image_url, plants.care_instructions, plants.light_requirements, plants.water_frequency, plants.size, plants.difficulty_level, categories.name AS category_name, plants.category_id").
		Joins("LEFT JOIN categories ON categories.id = plants.category_id").
		Where("plants.is_available = ?", true)

	term := strings.ToLower(strings.TrimSpace(params.Query))
	if term != "" {
		contains := "%" + term + "%"
		query = query.Where(
			"LOWER(plants.name) LIKE ? OR LOWER(plants.scientific_name) LIKE ? OR LOWER(plants.description) LIKE ?",
			contains, contains, contains,
		)
	}

	if params.Category != "" && params.Category != "all" {
		query = query.Where("plants.category_id = ?", params.Category)
	}
	if minPrice, err := strconv.ParseFloat(params.MinPrice, 64); err == nil {
		query = query.Where("plants.price >= ?", minPrice)
	}
	if maxPrice, err := strconv.ParseFloat(params.MaxPrice, 64); err == nil {
		query = query.Where("plants.price <= ?", maxPrice)
	}
	if params.Difficulty != "" && params.Difficulty != "all" {
		query = query.Where("plants.difficulty_level = ?", params.Difficulty)
	}
	if params.Size != "" && params.Size != "all" {
		query = query.Where("plants.size = ?", params.Size)
	}

	if term != "" {
		query = query.Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                "CASE WHEN LOWER(plants.name) LIKE ? THEN 1 WHEN LOWER(plants.name) LIKE ? THEN 2 ELSE 3 END, plants.name ASC",
				Vars:               []interface{}{term + "%", "%" + term + "%"},
				WithoutParentheses: true,
			},
		})
	} else {
		query = query.Order("plants.name ASC")
	}

	results := make([]PlantResult, 0)
	if err := query.Limit(searchResultLimit).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Suggestions powers the search box autocompletion. Terms shorter than two
// characters return an empty list rather than an error.
func (s *searchService) Suggestions(rawQuery string) ([]Suggestion, error) {
	term := strings.ToLower(strings.TrimSpace(rawQuery))
	suggestions := make([]Suggestion, 0)
	if len([]rune(term)) < 2 {
		return suggestions, nil
	}

	contains := "%" + term + "%"
	var rows []struct {
		Name           string
		ScientificName string
	}
	err := s.db.Model(&models.Plant{}).
		Select("name, scientific_name").
		Where("is_available = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(scientific_name) LIKE ?", contains, contains).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                "CASE WHEN LOWER(name) LIKE ? THEN 1 WHEN LOWER(scientific_name) LIKE ? THEN 2 ELSE 3 END, name ASC",
				Vars:               []interface{}{term + "%", term + "%"},
				WithoutParentheses: true,
			},
		}).
		Limit(suggestionLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		displayText := row.Name
		if row.ScientificName != "" {
			displayText = row.Name + " (" + row.ScientificName + ")"
		}
		suggestions = append(suggestions, Suggestion{
			Name:           row.Name,
			ScientificName: row.ScientificName,
			DisplayText:    displayText,
		})
	}
	return suggestions, nil
}
