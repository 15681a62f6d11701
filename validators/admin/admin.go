package adminValidator

import (
	"strings"

	"certify/middleware"
	"certify/models"

	"github.com/gofiber/fiber/v2"
)

var listableStatuses = []string{
	models.PaymentPending,
	models.PaymentUnderVerification,
	models.PaymentCompleted,
	models.PaymentFailed,
	models.PaymentRefunded,
}

// ListStudents validator middleware. Defaults page 1 / limit 20 and caps
// the page size so the review table cannot dump the whole table.
func ListStudents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   int    `json:"page"`
			Limit  int    `json:"limit"`
			Status string `json:"status"`
		})

		reqData.Page = c.QueryInt("page", 1)
		reqData.Limit = c.QueryInt("limit", 20)
		reqData.Status = strings.TrimSpace(c.Query("status"))

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit < 1 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		// Validate Status filter
		if reqData.Status != "" {
			valid := false
			for _, s := range listableStatuses {
				if s == reqData.Status {
					valid = true
					break
				}
			}
			if !valid {
				errors["status"] = "Invalid payment status!"
			}
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// RejectPayment validator middleware
func RejectPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Reason
		if len(strings.TrimSpace(reqData.Reason)) == 0 {
			errors["reason"] = "Rejection reason is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRejection", reqData)
		return c.Next()
	}
}

// UpdateUpiSetting validator middleware
func UpdateUpiSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UpiID string `json:"upi_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate UPI id, e.g. merchant@bank
		if !strings.Contains(strings.TrimSpace(reqData.UpiID), "@") {
			errors["upi_id"] = "Invalid UPI id!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpiSetting", reqData)
		return c.Next()
	}
}
