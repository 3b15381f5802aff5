package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"photomap-backend/internal/models"
	"photomap-backend/internal/services"
)

// ListPhotosHandler handles GET /api/photos: the full dataset, no
// filter or pagination, under a "photos" key. An empty store yields an
// empty array, not an error.
func ListPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := photoService.List(c.Context())
		if err != nil {
			log.Printf("Error fetching photos: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error fetching photos",
			})
		}
		return c.Status(fiber.StatusOK).JSON(models.PhotosResponse{Photos: photos})
	}
}
