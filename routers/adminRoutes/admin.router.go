package adminRoutes

import (
	adminControllers "certify/controllers/admin"
	adminAuthControllers "certify/controllers/adminauth"
	"certify/middleware"
	adminValidators "certify/validators/admin"
	adminAuthValidators "certify/validators/adminauth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/auth", adminAuthValidators.Auth(), adminAuthControllers.AdminAuth)

	// Everything below requires a live admin session
	adminGroup.Post("/logout", middleware.AdminSessionMiddleware, adminAuthControllers.AdminLogout)
	adminGroup.Get("/students", middleware.AdminSessionMiddleware, adminValidators.ListStudents(), adminControllers.ListStudents)
	adminGroup.Post("/students/:studentId/approve", middleware.AdminSessionMiddleware, adminControllers.ApprovePayment)
	adminGroup.Post("/students/:studentId/reject", middleware.AdminSessionMiddleware, adminValidators.RejectPayment(), adminControllers.RejectPayment)
	adminGroup.Get("/stats", middleware.AdminSessionMiddleware, adminControllers.DashboardStats)
	adminGroup.Put("/settings/upi", middleware.AdminSessionMiddleware, adminValidators.UpdateUpiSetting(), adminControllers.UpdateUpiSetting)
}
