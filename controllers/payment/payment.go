package paymentController

import (
	"errors"
	"fmt"
	"path/filepath"

	"certify/database"
	"certify/middleware"
	"certify/models"
	"certify/status"
	"certify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GetPaymentInfo returns everything the payment page needs: application
// state, track price and the platform UPI address.
func GetPaymentInfo(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var student models.Student
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", studentID, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if student.TestPassed == nil || !*student.TestPassed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Pass the assessment test before payment!", nil)
	}

	var track models.CertificateTrack
	if err := database.Database.Db.First(&track, student.CertificateID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship domain not found!", nil)
	}

	var upi models.PlatformSetting
	database.Database.Db.Where("setting_key = ?", models.SettingUpiID).First(&upi)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment info fetched successfully.", fiber.Map{
		"student": student,
		"price":   track.Price,
		"upi_id":  upi.SettingValue,
	})
}

// SubmitPayment stores the screenshot, then moves the application to
// under_verification through a guarded transition. The status never
// changes when the upload fails.
func SubmitPayment(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	transactionID, ok := c.Locals("validatedTransactionId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	screenshot, err := c.FormFile("screenshot")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment screenshot is required!", nil)
	}

	var student models.Student
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", studentID, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if student.TestPassed == nil || !*student.TestPassed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Pass the assessment test before payment!", nil)
	}
	if student.PaymentStatus == models.PaymentCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already completed!", nil)
	}

	owner := "anonymous"
	if student.UserID != nil {
		owner = fmt.Sprintf("%d", *student.UserID)
	}
	destDir := filepath.Join("payment-screenshots", owner)
	baseName := fmt.Sprintf("%d", student.ID)

	storedPath, err := utils.SaveUploadedFile(screenshot, destDir, baseName)
	if err != nil {
		logrus.Errorf("Error storing payment screenshot: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store payment screenshot!", nil)
	}
	screenshotURL := utils.GetFileURL(storedPath)

	if err := status.SubmitPaymentProof(database.Database.Db, student.ID, transactionID, screenshotURL); err != nil {
		if errors.Is(err, status.ErrStateConflict) || errors.Is(err, status.ErrValidation) || errors.Is(err, status.ErrNotFound) {
			return middleware.JsonResponse(c, status.HTTPStatus(err), false, "Payment cannot be submitted in the current state!", nil)
		}
		logrus.Errorf("Error submitting payment proof: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment submitted for verification. You will be notified once approved.", fiber.Map{
		"payment_status":         models.PaymentUnderVerification,
		"transaction_id":         transactionID,
		"payment_screenshot_url": screenshotURL,
	})
}
