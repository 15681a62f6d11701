package testController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"certify/database"
	"certify/models"
	"certify/scoring"
	testValidator "certify/validators/test"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/students/:studentId/test", GetTestQuestions)
	app.Post("/students/:studentId/test", testValidator.Submit(), SubmitTest)
	return app
}

func seedStudentWithBank(t *testing.T, bankSize int) *models.Student {
	t.Helper()

	student := &models.Student{
		FullName:         "Asha Verma",
		Email:            "asha@example.com",
		Mobile:           "9876543210",
		CollegeName:      "NIT Trichy",
		Branch:           "CSE",
		Year:             "3rd Year",
		CertificateID:    1,
		InternshipDomain: "Web Development",
		PaymentStatus:    models.PaymentPending,
	}
	require.NoError(t, database.Database.Db.Create(student).Error)

	for i := 0; i < bankSize; i++ {
		require.NoError(t, database.Database.Db.Create(&models.MCQQuestion{
			CertificateID: 1,
			Question:      fmt.Sprintf("Question %d", i+1),
			OptionA:       "A", OptionB: "B", OptionC: "C", OptionD: "D",
			CorrectOption: "A",
		}).Error)
	}
	return student
}

func submitAnswers(t *testing.T, app *fiber.App, studentID uint, answers map[string]string) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(fiber.Map{"answers": answers})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/students/%d/test", studentID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestGetTestQuestionsHidesAnswerKey(t *testing.T) {
	app := setupApp(t)
	student := seedStudentWithBank(t, 15)

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/students/%d/test", student.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed struct {
		Data struct {
			Questions       []map[string]interface{} `json:"questions"`
			DurationSeconds int                      `json:"duration_seconds"`
			PassScore       int                      `json:"pass_score"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	assert.Len(t, parsed.Data.Questions, scoring.MaxQuestions)
	assert.Equal(t, 600, parsed.Data.DurationSeconds)
	assert.Equal(t, scoring.PassScore, parsed.Data.PassScore)

	for _, q := range parsed.Data.Questions {
		_, leaked := q["correct_option"]
		assert.False(t, leaked, "answer key must not be served")
	}
}

func TestSubmitTestPass(t *testing.T) {
	app := setupApp(t)
	student := seedStudentWithBank(t, 10)

	// 6 of 10 correct
	answers := map[string]string{
		"1": "A", "2": "A", "3": "A", "4": "A", "5": "A", "6": "A",
		"7": "B", "8": "C",
	}
	code, body := submitAnswers(t, app, student.ID, answers)
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["score"])
	assert.Equal(t, float64(10), data["total_questions"])
	assert.Equal(t, true, data["passed"])

	// The pass is persisted on both the attempt and the application
	var attempt models.TestAttempt
	require.NoError(t, database.Database.Db.First(&attempt).Error)
	assert.Equal(t, 6, attempt.Score)
	assert.Equal(t, 10, attempt.TotalQuestions)
	assert.True(t, attempt.Passed)
	assert.Equal(t, student.ID, attempt.StudentID)

	var reloaded models.Student
	require.NoError(t, database.Database.Db.First(&reloaded, student.ID).Error)
	require.NotNil(t, reloaded.TestPassed)
	assert.True(t, *reloaded.TestPassed)
}

func TestSubmitTestFail(t *testing.T) {
	app := setupApp(t)
	student := seedStudentWithBank(t, 10)

	answers := map[string]string{"1": "A", "2": "A", "3": "B", "4": "C"}
	code, body := submitAnswers(t, app, student.ID, answers)
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["score"])
	assert.Equal(t, false, data["passed"])

	var reloaded models.Student
	require.NoError(t, database.Database.Db.First(&reloaded, student.ID).Error)
	assert.Nil(t, reloaded.TestPassed)
}

func TestSubmitTestEmptyAnswers(t *testing.T) {
	app := setupApp(t)
	student := seedStudentWithBank(t, 10)

	// The countdown auto-submits whatever exists, possibly nothing
	code, body := submitAnswers(t, app, student.ID, map[string]string{})
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["score"])
	assert.Equal(t, false, data["passed"])
}

func TestSubmitTestShortBank(t *testing.T) {
	app := setupApp(t)
	student := seedStudentWithBank(t, 3)

	// All 3 correct still fails against the fixed pass mark
	answers := map[string]string{"1": "A", "2": "A", "3": "A"}
	code, body := submitAnswers(t, app, student.ID, answers)
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["score"])
	assert.Equal(t, float64(3), data["total_questions"])
	assert.Equal(t, false, data["passed"])
}

func TestSubmitTestAfterPassIsNoop(t *testing.T) {
	app := setupApp(t)
	student := seedStudentWithBank(t, 10)

	answers := map[string]string{"1": "A", "2": "A", "3": "A", "4": "A", "5": "A"}
	code, _ := submitAnswers(t, app, student.ID, answers)
	require.Equal(t, http.StatusOK, code)

	code, body := submitAnswers(t, app, student.ID, answers)
	require.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["already_passed"])

	// No second attempt recorded
	var attempts int64
	database.Database.Db.Model(&models.TestAttempt{}).Count(&attempts)
	assert.Equal(t, int64(1), attempts)
}

func TestSubmitTestUnknownStudent(t *testing.T) {
	app := setupApp(t)

	code, _ := submitAnswers(t, app, 999, map[string]string{"1": "A"})
	assert.Equal(t, http.StatusNotFound, code)
}
