package applicationController

import (
	"certify/database"
	"certify/middleware"
	"certify/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RegisterStudent creates a new application for a track. The row starts
// in payment_status "pending" with no test outcome yet.
func RegisterStudent(c *fiber.Ctx) error {
	certificateID, err := c.ParamsInt("certificateId")
	if err != nil || certificateID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	reqData, ok := c.Locals("validatedApplication").(*struct {
		FullName       string `json:"full_name"`
		Email          string `json:"email"`
		Mobile         string `json:"mobile"`
		CollegeName    string `json:"college_name"`
		Branch         string `json:"branch"`
		Year           string `json:"year"`
		CompletionDate string `json:"completion_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var track models.CertificateTrack
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND is_active = ?", certificateID, false, true).
		First(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship domain not found!", nil)
	}

	// Anonymous applications are allowed; a valid student token links the row
	var userID *uint
	if id, ok := c.Locals("userId").(uint); ok {
		userID = &id
	}

	student := models.Student{
		UserID:           userID,
		FullName:         reqData.FullName,
		Email:            reqData.Email,
		Mobile:           reqData.Mobile,
		CollegeName:      reqData.CollegeName,
		Branch:           reqData.Branch,
		Year:             reqData.Year,
		CompletionDate:   reqData.CompletionDate,
		CertificateID:    track.ID,
		InternshipDomain: track.CourseName,
		PaymentStatus:    models.PaymentPending,
	}

	if err := database.Database.Db.Create(&student).Error; err != nil {
		logrus.Errorf("Error creating application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful. Complete the assessment test to proceed.", student)
}

// GetStudent returns one application (drives the test and status pages)
func GetStudent(c *fiber.Ctx) error {
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

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application fetched successfully.", student)
}

// GetMyApplications lists the logged-in student's applications for the
// dashboard, newest first
func GetMyApplications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var applications []models.Student
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	certified := 0
	for _, a := range applications {
		if a.CertificateNumber != nil {
			certified++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully.", fiber.Map{
		"applications": applications,
		"total":        len(applications),
		"certified":    certified,
	})
}
