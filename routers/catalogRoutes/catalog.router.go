package catalogRoutes

import (
	catalogControllers "certify/controllers/catalog"
	verifyControllers "certify/controllers/verify"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes wires the public, unauthenticated surface
func SetupCatalogRoutes(app *fiber.App) {
	app.Get("/certificates", catalogControllers.ListTracks)
	app.Get("/certificates/:certificateId", catalogControllers.GetTrack)
	app.Get("/settings/upi", catalogControllers.GetUpiSetting)

	// QR code target on every issued certificate
	app.Get("/verify", verifyControllers.VerifyCertificate)
}
