package middleware

import (
	"strings"
	"time"

	"certify/database"
	"certify/models"

	"github.com/gofiber/fiber/v2"
)

// AdminSessionMiddleware validates the opaque admin bearer token against
// the admin_sessions table on every privileged call. Tokens expire 24h
// after login; logout deletes them.
func AdminSessionMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}
	token := authHeader[len("Bearer "):]

	var session models.AdminSession
	if err := database.Database.Db.Where("token = ?", token).First(&session).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired session", nil)
	}

	if session.ExpiresAt.Before(time.Now()) {
		database.Database.Db.Delete(&session)
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired session", nil)
	}

	c.Locals("adminUsername", session.Username)
	return c.Next()
}
