package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"photomap-backend/internal/models"
	"photomap-backend/internal/services"
)

// UploadPhotoHandler handles POST /api/upload. Body:
// {image, latitude, longitude, timestamp} with image as a base64 data
// URI. Field presence is checked with nil tests so a latitude or
// longitude of exactly 0 is accepted.
func UploadPhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UploadRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid JSON body")
		}

		if req.Image == nil || *req.Image == "" {
			return badRequest(c, "missing required field: image")
		}
		if req.Latitude == nil {
			return badRequest(c, "missing required field: latitude")
		}
		if req.Longitude == nil {
			return badRequest(c, "missing required field: longitude")
		}
		if req.Timestamp == nil || *req.Timestamp == "" {
			return badRequest(c, "missing required field: timestamp")
		}
		if *req.Latitude < -90 || *req.Latitude > 90 {
			return badRequest(c, "latitude must be between -90 and 90")
		}
		if *req.Longitude < -180 || *req.Longitude > 180 {
			return badRequest(c, "longitude must be between -180 and 180")
		}

		photo, err := photoService.Upload(c.Context(), req)
		if err != nil {
			// Full detail stays server-side; the caller gets a generic
			// message regardless of where the write path failed.
			log.Printf("Error uploading photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error uploading photo",
			})
		}

		return c.Status(fiber.StatusOK).JSON(models.UploadResponse{
			Message:  "Photo uploaded successfully",
			ImageURL: photo.ImageURL,
		})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}
