// controllers/service.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"carecircle-backend/config"
	"carecircle-backend/models"
	"carecircle-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	servicesCacheKey = "services:catalog"
	servicesCacheTTL = 10 * time.Second
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
	Details     string  `json:"details"`
}

// GetServices returns the catalog, seeding the three defaults on first call
// against an empty table. Responses sit in Redis for ten seconds.
func GetServices(c *gin.Context) {
	c.Header("Cache-Control", "public, s-maxage=10, stale-while-revalidate=59")

	if cached := readCachedCatalog(c.Request.Context()); cached != nil {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Service{}).Count(&count).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	if count == 0 {
		seeds := models.DefaultServices()
		if err := config.DB.Create(&seeds).Error; err != nil {
			log.Error().Err(err).Msg("Failed to seed default services")
		}
	}

	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	writeCachedCatalog(c.Request.Context(), services)
	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateService adds a catalog entry. Admin only, enforced by middleware.
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Details:     input.Details,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
		return
	}

	invalidateCatalogCache(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{"message": "Service added", "id": service.ID})
}

func readCachedCatalog(ctx context.Context) []byte {
	if config.Cache == nil {
		return nil
	}
	cached, err := config.Cache.Get(ctx, servicesCacheKey).Bytes()
	if err != nil {
		return nil
	}
	return cached
}

func writeCachedCatalog(ctx context.Context, services []models.Service) {
	if config.Cache == nil {
		return
	}
	payload, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := config.Cache.Set(ctx, servicesCacheKey, payload, servicesCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to cache service catalog")
	}
}

func invalidateCatalogCache(ctx context.Context) {
	if config.Cache == nil {
		return
	}
	if err := config.Cache.Del(ctx, servicesCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate service catalog cache")
	}
}
