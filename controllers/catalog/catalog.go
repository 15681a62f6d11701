package catalogController

import (
	"certify/database"
	"certify/middleware"
	"certify/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ListTracks returns the active internship tracks for the landing page
func ListTracks(c *fiber.Ctx) error {
	var tracks []models.CertificateTrack
	if err := database.Database.Db.
		Where("is_deleted = ? AND is_active = ?", false, true).
		Order("id asc").
		Find(&tracks).Error; err != nil {
		logrus.Errorf("Error fetching tracks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch internship domains!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship domains fetched successfully.", tracks)
}

// GetTrack returns one active track with the metadata the registration
// form needs
func GetTrack(c *fiber.Ctx) error {
	certificateID, err := c.ParamsInt("certificateId")
	if err != nil || certificateID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	var track models.CertificateTrack
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND is_active = ?", certificateID, false, true).
		First(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship domain not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship domain fetched successfully.", fiber.Map{
		"track":    track,
		"branches": models.Branches,
		"years":    models.Years,
	})
}

// GetUpiSetting exposes the UPI address the payment page renders as a
// QR target
func GetUpiSetting(c *fiber.Ctx) error {
	var setting models.PlatformSetting
	if err := database.Database.Db.
		Where("setting_key = ?", models.SettingUpiID).
		First(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "UPI setting not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting fetched successfully.", fiber.Map{
		"upi_id": setting.SettingValue,
	})
}
