package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"photomap-backend/internal/models"
	"photomap-backend/internal/services"
)

// AdminLoginHandler handles POST /api/admin/login: checks the admin
// password and returns a bearer token for the map view.
func AdminLoginHandler(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authService.Enabled() {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "admin login is not configured",
			})
		}

		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid JSON body")
		}

		token, err := authService.Login(req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPassword) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "invalid password",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "login failed",
			})
		}

		return c.JSON(models.LoginResponse{Token: token})
	}
}

// AdminAuthMiddleware verifies the bearer token on gated routes. When no
// admin password is configured the gate is disabled and requests pass
// through, preserving the open behavior of the original deployment.
func AdminAuthMiddleware(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authService.Enabled() {
			return c.Next()
		}

		// Token from the Authorization header or an access_token query param.
		token := c.Query("access_token")
		if token == "" {
			authHeader := c.Get("Authorization")
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				token = authHeader[7:]
			}
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing token"})
		}

		if _, err := services.ValidateToken(token); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token"})
		}

		return c.Next()
	}
}
