package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=1000"`
	ImageUrl    string `json:"imageUrl" binding:"omitempty,max=500"`
}

type Plant struct {
	gorm.Model
	Name              string         `json:"name" binding:"required,min=2,max=150"`
	ScientificName    string         `json:"scientificName" binding:"max=200"`
	Description       string         `json:"description" binding:"max=2000"`
	Price             float64        `json:"price" binding:"gte=0,lte=999999.99"`
	StockQuantity     int            `json:"stockQuantity" gorm:"default:0" binding:"gte=0,lte=100000"`
	CategoryID        *uint          `json:"categoryId"`
	ImageUrl          string         `json:"imageUrl" binding:"omitempty,max=500"`
	CareInstructions  string         `json:"careInstructions" binding:"max=1000"`
	LightRequirements string         `json:"lightRequirements" binding:"max=100"`
	WaterFrequency    string         `json:"waterFrequency" binding:"max=100"`
	Size              string         `json:"size" binding:"max=50"`
	DifficultyLevel   string         `json:"difficultyLevel" binding:"omitempty,oneof='Très facile' Facile Moyen Difficile 'Très difficile'"`
	IsAvailable       bool           `json:"isAvailable" gorm:"default:true"`
	Tags              datatypes.JSON `json:"tags"`
	Category          *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// AdjustStockData is the body of PUT /plantes/stock.
type AdjustStockData struct {
	Nom      string `json:"nom" binding:"required"`
	Action   string `json:"action" binding:"required,oneof=increase decrease"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}
