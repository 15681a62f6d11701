package paymentValidator

import (
	"strings"

	"certify/middleware"
	"certify/utils"

	"github.com/gofiber/fiber/v2"
)

// Submit validator middleware for the multipart payment form. Checks the
// transaction id and the screenshot before the controller touches disk.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactionID := strings.TrimSpace(c.FormValue("transaction_id"))

		errors := make(map[string]string)

		// Validate Transaction ID
		if transactionID == "" {
			errors["transaction_id"] = "Transaction id is required!"
		}

		// Validate Screenshot
		screenshot, err := c.FormFile("screenshot")
		if err != nil {
			errors["screenshot"] = "Payment screenshot is required!"
		} else if screenshot.Size > utils.MaxScreenshotSize {
			errors["screenshot"] = "Screenshot must be 5MB or smaller!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransactionId", transactionID)
		return c.Next()
	}
}
