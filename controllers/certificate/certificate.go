package certificateController

import (
	"certify/config"
	"certify/database"
	"certify/middleware"
	"certify/models"

	"github.com/gofiber/fiber/v2"
)

// GetCertificate returns the data the certificate page renders: student
// details plus the public verification URL encoded in the QR code.
// Available only once the payment is completed.
func GetCertificate(c *fiber.Ctx) error {
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

	if student.PaymentStatus != models.PaymentCompleted || student.CertificateNumber == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate not issued yet!", nil)
	}

	verificationURL := config.AppConfig.BaseURL + "/verify?id=" + *student.CertificateNumber

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully.", fiber.Map{
		"certificate_number": student.CertificateNumber,
		"student_name":       student.FullName,
		"internship_domain":  student.InternshipDomain,
		"college_name":       student.CollegeName,
		"branch":             student.Branch,
		"year":               student.Year,
		"completion_date":    student.CompletionDate,
		"issued_at":          student.CertificateIssuedAt,
		"verification_url":   verificationURL,
	})
}
