package applicationRoutes

import (
	applicationControllers "certify/controllers/application"
	certificateControllers "certify/controllers/certificate"
	paymentControllers "certify/controllers/payment"
	testControllers "certify/controllers/test"
	"certify/middleware"
	applicationValidators "certify/validators/application"
	paymentValidators "certify/validators/payment"
	testValidators "certify/validators/test"

	"github.com/gofiber/fiber/v2"
)

// SetupApplicationRoutes wires the student journey: register, take the
// test, pay, and fetch the certificate.
func SetupApplicationRoutes(app *fiber.App) {
	studentGroup := app.Group("/students")

	studentGroup.Post("/register/:certificateId", applicationValidators.Register(), middleware.OptionalJWTMiddleware, applicationControllers.RegisterStudent)
	studentGroup.Get("/my", middleware.JWTMiddleware, applicationControllers.GetMyApplications)
	studentGroup.Get("/:studentId", applicationControllers.GetStudent)

	studentGroup.Get("/:studentId/test", testControllers.GetTestQuestions)
	studentGroup.Post("/:studentId/test", testValidators.Submit(), testControllers.SubmitTest)

	studentGroup.Get("/:studentId/payment", paymentControllers.GetPaymentInfo)
	studentGroup.Post("/:studentId/payment", paymentValidators.Submit(), paymentControllers.SubmitPayment)

	studentGroup.Get("/:studentId/certificate", certificateControllers.GetCertificate)
}
