package testValidator

import (
	"certify/middleware"

	"github.com/gofiber/fiber/v2"
)

// Submit validator middleware. An empty answers map is legal because the
// countdown auto-submits whatever the student has; a missing map is not.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[string]string `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Answers == nil {
			errors["answers"] = "Answers are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTestSubmission", reqData)
		return c.Next()
	}
}
