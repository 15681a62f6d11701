package applicationValidator

import (
	"regexp"
	"strings"

	"certify/middleware"
	"certify/models"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(mobile)
}

func isAllowed(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// Register validator middleware. Every field of the registration form is
// required; branch and year must come from the published lists.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName       string `json:"full_name"`
			Email          string `json:"email"`
			Mobile         string `json:"mobile"`
			CollegeName    string `json:"college_name"`
			Branch         string `json:"branch"`
			Year           string `json:"year"`
			CompletionDate string `json:"completion_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Full Name
		if len(strings.TrimSpace(reqData.FullName)) < 3 {
			errors["full_name"] = "Full name must be at least 3 characters long!"
		}

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Mobile
		if reqData.Mobile == "" || !isValidMobile(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}

		// Validate College Name
		if len(strings.TrimSpace(reqData.CollegeName)) == 0 {
			errors["college_name"] = "College name is required!"
		}

		// Validate Branch
		if !isAllowed(reqData.Branch, models.Branches) {
			errors["branch"] = "Invalid branch!"
		}

		// Validate Year
		if !isAllowed(reqData.Year, models.Years) {
			errors["year"] = "Invalid year!"
		}

		// Validate Completion Date
		if len(strings.TrimSpace(reqData.CompletionDate)) == 0 {
			errors["completion_date"] = "Completion date is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated application to the next middleware
		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}
