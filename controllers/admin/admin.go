package adminController

import (
	"errors"
	"strings"

	"certify/database"
	"certify/middleware"
	"certify/models"
	"certify/status"
	"certify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ListStudents returns a page of applications for the review table,
// optionally filtered by payment status
func ListStudents(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page   int    `json:"page"`
		Limit  int    `json:"limit"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	query := database.Database.Db.Model(&models.Student{}).Where("is_deleted = ?", false)
	if reqData.Status != "" {
		query = query.Where("payment_status = ?", reqData.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logrus.Errorf("Error counting applications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	var students []models.Student
	if err := query.
		Order("created_at desc").
		Offset((reqData.Page - 1) * reqData.Limit).
		Limit(reqData.Limit).
		Find(&students).Error; err != nil {
		logrus.Errorf("Error fetching applications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully.", fiber.Map{
		"students": students,
		"total":    total,
		"page":     reqData.Page,
		"limit":    reqData.Limit,
	})
}

// ApprovePayment completes a payment under verification and issues the
// certificate, then mails the student the certificate number
func ApprovePayment(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	adminUsername, _ := c.Locals("adminUsername").(string)

	student, err := status.ApprovePayment(database.Database.Db, uint(studentID), adminUsername)
	if err != nil {
		if errors.Is(err, status.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
		}
		if errors.Is(err, status.ErrStateConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment is not under verification!", nil)
		}
		logrus.Errorf("Error approving payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve payment!", nil)
	}

	go func(s models.Student) {
		certNumber := ""
		if s.CertificateNumber != nil {
			certNumber = *s.CertificateNumber
		}
		if err := utils.SendCertificateEmail(s.Email, s.FullName, s.InternshipDomain, certNumber); err != nil {
			logrus.Errorf("Error sending certificate email: %v", err)
		}
	}(*student)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment approved and certificate issued.", student)
}

// RejectPayment fails a payment under verification with a reason, then
// mails the student so they can resubmit
func RejectPayment(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	reqData, ok := c.Locals("validatedRejection").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	student, err := status.RejectPayment(database.Database.Db, uint(studentID), reqData.Reason)
	if err != nil {
		if errors.Is(err, status.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rejection reason is required!", nil)
		}
		if errors.Is(err, status.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
		}
		if errors.Is(err, status.ErrStateConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment is not under verification!", nil)
		}
		logrus.Errorf("Error rejecting payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject payment!", nil)
	}

	go func(s models.Student) {
		if err := utils.SendPaymentRejectedEmail(s.Email, s.FullName, s.RejectionReason); err != nil {
			logrus.Errorf("Error sending rejection email: %v", err)
		}
	}(*student)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment rejected.", student)
}

// DashboardStats aggregates counts for the admin dashboard header
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalApplications, underVerification, completed, failed, certificates int64

	if err := db.Model(&models.Student{}).Where("is_deleted = ?", false).
		Count(&totalApplications).Error; err != nil {
		logrus.Errorf("Error counting applications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	db.Model(&models.Student{}).Where("is_deleted = ? AND payment_status = ?", false, models.PaymentUnderVerification).
		Count(&underVerification)
	db.Model(&models.Student{}).Where("is_deleted = ? AND payment_status = ?", false, models.PaymentCompleted).
		Count(&completed)
	db.Model(&models.Student{}).Where("is_deleted = ? AND payment_status = ?", false, models.PaymentFailed).
		Count(&failed)
	db.Model(&models.Student{}).Where("is_deleted = ? AND certificate_number IS NOT NULL", false).
		Count(&certificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully.", fiber.Map{
		"total_applications": totalApplications,
		"under_verification": underVerification,
		"completed":          completed,
		"failed":             failed,
		"certificates":       certificates,
	})
}

// UpdateUpiSetting changes the UPI address shown on the payment page
func UpdateUpiSetting(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpiSetting").(*struct {
		UpiID string `json:"upi_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	upiID := strings.TrimSpace(reqData.UpiID)
	if upiID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "UPI id is required!", nil)
	}

	res := database.Database.Db.Model(&models.PlatformSetting{}).
		Where("setting_key = ?", models.SettingUpiID).
		Update("setting_value", upiID)
	if res.Error != nil {
		logrus.Errorf("Error updating UPI setting: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update setting!", nil)
	}
	if res.RowsAffected == 0 {
		if err := database.Database.Db.Create(&models.PlatformSetting{
			SettingKey:   models.SettingUpiID,
			SettingValue: upiID,
		}).Error; err != nil {
			logrus.Errorf("Error creating UPI setting: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update setting!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "UPI setting updated.", fiber.Map{
		"upi_id": upiID,
	})
}
