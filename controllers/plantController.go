package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/botanika-shop/botanika-api/initializers"
	"github.com/botanika-shop/botanika-api/models"
)

// GetPlant handles GET /api/plants/:id.
func GetPlant(ctx *gin.Context) {
	plantId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "ID de plante invalide")
		return
	}

	var plant models.Plant
	result := initializers.DB.Preload("Category").First(&plant, plantId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgPlantNotFound)
		} else {
			log.Println("Plant lookup error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var category gin.H
	if plant.Category != nil {
		category = gin.H{
			"id":          plant.Category.ID,
			"name":        plant.Category.Name,
			"description": plant.Category.Description,
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"plant": gin.H{
			"id":                plant.ID,
			"name":              plant.Name,
			"scientificName":    plant.ScientificName,
			"description":       plant.Description,
			"price":             plant.Price,
			"stockQuantity":     plant.StockQuantity,
			"imageUrl":          plant.ImageUrl,
			"careInstructions":  plant.CareInstructions,
			"lightRequirements": plant.LightRequirements,
			"waterFrequency":    plant.WaterFrequency,
			"size":              plant.Size,
			"difficultyLevel":   plant.DifficultyLevel,
			"isAvailable":       plant.IsAvailable,
			"tags":              plant.Tags,
			"category":          category,
			"createdAt":         plant.CreatedAt,
			"updatedAt":         plant.UpdatedAt,
		},
	})
}

// CreatePlant handles POST /api/plants (admin only).
func CreatePlant(ctx *gin.Context) {
	var plant models.Plant
	if err := ctx.ShouldBindJSON(&plant); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&plant).Error; err != nil {
		log.Println("Plant creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "plantId": plant.ID})
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadPlantImage handles POST /api/plants/:id/image (admin only). Files
// land in S3; the first successful upload becomes the plant's image.
func UploadPlantImage(ctx *gin.Context) {
	plantId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "ID de plante invalide")
		return
	}

	var plant models.Plant
	if err := initializers.DB.First(&plant, plantId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgPlantNotFound)
		} else {
			log.Println("Plant lookup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Formulaire invalide")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Aucun fichier envoyé")
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		log.Println("AWS config error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uniqueFilename := fmt.Sprintf("%d-%s-%s", plantId, time.Now().Format("20060102150405"), file.Filename)
		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}
		uploadedUrls = append(uploadedUrls, result.Location)
	}

	if len(uploadedUrls) > 0 {
		if err := initializers.DB.Model(&plant).Update("image_url", uploadedUrls[0]).Error; err != nil {
			log.Println("Error saving image url:", err)
		}
	}

	response := gin.H{"success": true, "urls": uploadedUrls}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}
