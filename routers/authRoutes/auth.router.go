package authRoutes

import (
	authControllers "certify/controllers/auth"
	authValidators "certify/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
