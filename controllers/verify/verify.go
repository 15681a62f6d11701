package verifyController

import (
	"strings"

	"certify/database"
	"certify/middleware"
	"certify/models"

	"github.com/gofiber/fiber/v2"
)

// VerifyCertificate is the public lookup behind the QR code on every
// certificate. It matches only completed applications, so a revoked or
// still-pending number is indistinguishable from one that never existed.
func VerifyCertificate(c *fiber.Ctx) error {
	certNumber := strings.ToUpper(strings.TrimSpace(c.Query("id")))
	if certNumber == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate number is required!", nil)
	}

	var student models.Student
	err := database.Database.Db.
		Where("certificate_number = ? AND payment_status = ? AND is_deleted = ?",
			certNumber, models.PaymentCompleted, false).
		First(&student).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid.", fiber.Map{
		"certificate_number": student.CertificateNumber,
		"student_name":       student.FullName,
		"internship_domain":  student.InternshipDomain,
		"college_name":       student.CollegeName,
		"completion_date":    student.CompletionDate,
		"issued_at":          student.CertificateIssuedAt,
	})
}
