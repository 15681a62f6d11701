package adminAuthValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Auth validator middleware for the combined login/setup endpoint. Error
// responses use the endpoint's own {success, message} contract instead of
// the common validation shape.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Action   string `json:"action"`
			Username string `json:"username"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request",
			})
		}

		if strings.TrimSpace(reqData.Username) == "" || reqData.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Username and password are required",
			})
		}

		c.Locals("validatedAdminAuth", reqData)
		return c.Next()
	}
}
