package testController

import (
	"strconv"

	"certify/database"
	"certify/middleware"
	"certify/models"
	"certify/scoring"
	"certify/status"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// servedQuestion is a question as exposed to the test page, without the
// answer key
type servedQuestion struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
}

// GetTestQuestions draws a shuffled test from the track's question bank.
// A student who already passed is pointed at the payment step instead.
func GetTestQuestions(c *fiber.Ctx) error {
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

	if student.TestPassed != nil && *student.TestPassed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Test already passed. Proceed to payment.", fiber.Map{
			"already_passed": true,
		})
	}

	var bank []models.MCQQuestion
	if err := database.Database.Db.
		Where("certificate_id = ? AND is_deleted = ?", student.CertificateID, false).
		Find(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	drawn := scoring.Draw(bank)
	questions := make([]servedQuestion, len(drawn))
	for i, q := range drawn {
		questions[i] = servedQuestion{
			ID:       q.ID,
			Question: q.Question,
			OptionA:  q.OptionA,
			OptionB:  q.OptionB,
			OptionC:  q.OptionC,
			OptionD:  q.OptionD,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully.", fiber.Map{
		"internship_domain": student.InternshipDomain,
		"questions":         questions,
		"duration_seconds":  600,
		"pass_score":        scoring.PassScore,
	})
}

// SubmitTest scores a submission against the track's answer key, records
// the attempt for audit and flips test_passed on a pass. The 10 minute
// countdown auto-submits with whatever answers exist, so an empty answer
// map is a legal submission that simply scores zero.
func SubmitTest(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	reqData, ok := c.Locals("validatedTestSubmission").(*struct {
		Answers map[string]string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var student models.Student
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", studentID, false).
		First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	// Re-submitting after a pass is a no-op, not an error
	if student.TestPassed != nil && *student.TestPassed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Test already passed. Proceed to payment.", fiber.Map{
			"already_passed": true,
		})
	}

	var bank []models.MCQQuestion
	if err := database.Database.Db.
		Where("certificate_id = ? AND is_deleted = ?", student.CertificateID, false).
		Find(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	answers := make(map[uint]string, len(reqData.Answers))
	auditAnswers := datatypes.JSONMap{}
	for idStr, option := range reqData.Answers {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}
		answers[uint(id)] = option
		auditAnswers[idStr] = option
	}

	total := scoring.TestSize(len(bank))
	score, passed := scoring.Evaluate(bank, answers)
	// A submission can only cover the drawn subset
	if score > total {
		score = total
	}

	attempt := models.TestAttempt{
		Score:          score,
		TotalQuestions: total,
		Passed:         passed,
		Answers:        auditAnswers,
	}

	if err := status.RecordTestResult(database.Database.Db, student.ID, &attempt); err != nil {
		logrus.Errorf("Error recording test attempt: %v", err)
		return middleware.JsonResponse(c, status.HTTPStatus(err), false, "Failed to submit test!", nil)
	}

	message := "Test submitted."
	if passed {
		message = "Congratulations! You passed the test."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"attempt":         attempt,
		"score":           score,
		"total_questions": total,
		"passed":          passed,
	})
}
