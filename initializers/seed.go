package initializers

import (
	"log"

	"github.com/botanika-shop/botanika-api/models"
	"gorm.io/datatypes"
)

func categoryID(c models.Category) *uint {
	id := c.ID
	return &id
}

// SeedCatalog loads the starter catalog on an empty database so the shop
// pages have something to show on first run.
func SeedCatalog() {
	var plantCount int64
	DB.Model(&models.Plant{}).Count(&plantCount)
	if plantCount > 0 {
		return
	}

	interieur := models.Category{Name: "Plantes d'intérieur", Description: "Plantes parfaites pour décorer votre intérieur"}
	grasses := models.Category{Name: "Plantes grasses", Description: "Plantes succulentes faciles d'entretien"}
	tropicales := models.Category{Name: "Plantes tropicales", Description: "Plantes exotiques et tropicales"}
	for _, category := range []*models.Category{&interieur, &grasses, &tropicales} {
		if err := DB.Create(category).Error; err != nil {
			log.Println("Seed category error:", err)
			return
		}
	}

	plants := []models.Plant{
		{
			Name:              "Zamioculcas zamiifolia",
			ScientificName:    "Zamioculcas zamiifolia",
			Description:       "Plante d'intérieur très résistante et facile d'entretien, parfaite pour les débutants. Tolère bien la sécheresse et les conditions de faible luminosité.",
			Price:             199.99,
			StockQuantity:     24,
			CategoryID:        categoryID(interieur),
			ImageUrl:          "/Plants/1st plant.jpg",
			CareInstructions:  "Arroser quand le sol est complètement sec, environ une fois par mois",
			LightRequirements: "Lumière indirecte à faible luminosité",
			WaterFrequency:    "1 fois par mois",
			Size:              "Moyenne",
			DifficultyLevel:   "Très facile",
			IsAvailable:       true,
			Tags:              datatypes.JSON([]byte(`["débutant","dépolluante"]`)),
		},
		{
			Name:              "Aglaonema",
			ScientificName:    "Aglaonema commutatum",
			Description:       "Plante aux magnifiques feuilles colorées et panachées, idéale pour apporter de la couleur et de la vie dans votre intérieur.",
			Price:             150.00,
			StockQuantity:     32,
			CategoryID:        categoryID(interieur),
			ImageUrl:          "/Plants/plante4.jpg",
			CareInstructions:  "Maintenir le sol légèrement humide, éviter les courants d'air froids",
			LightRequirements: "Lumière indirecte vive",
			WaterFrequency:    "1-2 fois par semaine",
			Size:              "Moyenne",
			DifficultyLevel:   "Facile",
			IsAvailable:       true,
			Tags:              datatypes.JSON([]byte(`["colorée"]`)),
		},
		{
			Name:              "Philodendron Xanadu",
			ScientificName:    "Philodendron bipinnatifidum",
			Description:       "Magnifique plante tropicale aux feuilles profondément découpées, apporte une touche exotique et luxuriante à votre décoration.",
			Price:             50.00,
			StockQuantity:     17,
			CategoryID:        categoryID(tropicales),
			ImageUrl:          "/Plants/plante3.jpg",
			CareInstructions:  "Arroser régulièrement, aime l'humidité ambiante élevée",
			LightRequirements: "Lumière indirecte vive",
			WaterFrequency:    "2-3 fois par semaine",
			Size:              "Grande",
			DifficultyLevel:   "Facile",
			IsAvailable:       true,
			Tags:              datatypes.JSON([]byte(`["tropicale"]`)),
		},
		{
			Name:              "Sansevieria trifasciata",
			ScientificName:    "Sansevieria trifasciata",
			Description:       "Aussi appelée \"langue de belle-mère\", cette plante succulente est quasi-indestructible et excellente pour purifier l'air intérieur.",
			Price:             179.99,
			StockQuantity:     24,
			CategoryID:        categoryID(grasses),
			ImageUrl:          "/Plants/plant5.jpg",
			CareInstructions:  "Arroser très peu, laisser le sol sécher complètement entre les arrosages",
			LightRequirements: "Tolère toutes les conditions de lumière",
			WaterFrequency:    "1 fois toutes les 2-3 semaines",
			Size:              "Grande",
			DifficultyLevel:   "Très facile",
			IsAvailable:       true,
			Tags:              datatypes.JSON([]byte(`["débutant","dépolluante"]`)),
		},
	}

	if err := DB.Create(&plants).Error; err != nil {
		log.Println("Seed plants error:", err)
		return
	}
	log.Println("Seeded catalog with", len(plants), "plants.")
}
