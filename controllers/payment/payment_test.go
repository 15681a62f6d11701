package paymentController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"certify/config"
	"certify/database"
	"certify/models"
	paymentValidator "certify/validators/payment"

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

	config.AppConfig = &config.Config{
		BaseURL:   "http://localhost:5000",
		UploadDir: t.TempDir(),
	}

	require.NoError(t, db.Create(&models.CertificateTrack{
		CourseName: "Web Development",
		Price:      99,
		IsActive:   true,
	}).Error)

	app := fiber.New()
	app.Get("/students/:studentId/payment", GetPaymentInfo)
	app.Post("/students/:studentId/payment", paymentValidator.Submit(), SubmitPayment)
	return app
}

func boolPtr(b bool) *bool { return &b }

func seedStudent(t *testing.T, mutate func(*models.Student)) *models.Student {
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
	if mutate != nil {
		mutate(student)
	}
	require.NoError(t, database.Database.Db.Create(student).Error)
	return student
}

func submitPayment(t *testing.T, app *fiber.App, studentID uint, transactionID string, screenshot []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if transactionID != "" {
		require.NoError(t, writer.WriteField("transaction_id", transactionID))
	}
	if screenshot != nil {
		part, err := writer.CreateFormFile("screenshot", "proof.png")
		require.NoError(t, err)
		_, err = part.Write(screenshot)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/students/%d/payment", studentID), &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGetPaymentInfo(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t, func(s *models.Student) {
		s.TestPassed = boolPtr(true)
	})

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/students/%d/payment", student.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, float64(99), data["price"])
	assert.Equal(t, "payments@upi", data["upi_id"])
}

func TestGetPaymentInfoRequiresPassedTest(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t, nil)

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/students/%d/payment", student.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitPayment(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t, func(s *models.Student) {
		s.TestPassed = boolPtr(true)
	})

	resp := submitPayment(t, app, student.ID, "TXN12345", []byte("fake image bytes"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.Student
	require.NoError(t, database.Database.Db.First(&reloaded, student.ID).Error)
	assert.Equal(t, models.PaymentUnderVerification, reloaded.PaymentStatus)
	assert.Equal(t, "TXN12345", reloaded.TransactionID)
	assert.Contains(t, reloaded.PaymentScreenshotURL, "http://localhost:5000/uploads/")
}

func TestSubmitPaymentMissingTransactionId(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t, func(s *models.Student) {
		s.TestPassed = boolPtr(true)
	})

	resp := submitPayment(t, app, student.ID, "", []byte("fake image bytes"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Validation failure leaves the application untouched
	var reloaded models.Student
	require.NoError(t, database.Database.Db.First(&reloaded, student.ID).Error)
	assert.Equal(t, models.PaymentPending, reloaded.PaymentStatus)
	assert.Empty(t, reloaded.TransactionID)
}

func TestSubmitPaymentMissingScreenshot(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t, func(s *models.Student) {
		s.TestPassed = boolPtr(true)
	})

	resp := submitPayment(t, app, student.ID, "TXN12345", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSubmitPaymentRequiresPassedTest(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t, nil)

	resp := submitPayment(t, app, student.ID, "TXN12345", []byte("fake image bytes"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitPaymentAfterCompletionRefused(t *testing.T) {
	app := setupApp(t)
	student := seedStudent(t, func(s *models.Student) {
		s.TestPassed = boolPtr(true)
		s.PaymentStatus = models.PaymentCompleted
	})

	resp := submitPayment(t, app, student.ID, "TXN99999", []byte("fake image bytes"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var reloaded models.Student
	require.NoError(t, database.Database.Db.First(&reloaded, student.ID).Error)
	assert.Equal(t, models.PaymentCompleted, reloaded.PaymentStatus)
}
