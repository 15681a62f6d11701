package applicationController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"certify/database"
	"certify/middleware"
	"certify/models"
	applicationValidator "certify/validators/application"

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

	require.NoError(t, db.Create(&models.CertificateTrack{
		CourseName:  "Web Development",
		Description: "Full stack internship",
		Price:       99,
		IsActive:    true,
	}).Error)

	app := fiber.New()
	app.Post("/students/register/:certificateId",
		applicationValidator.Register(), middleware.OptionalJWTMiddleware, RegisterStudent)
	app.Get("/students/:studentId", GetStudent)
	return app
}

func validRegistration() map[string]string {
	return map[string]string{
		"full_name":       "Asha Verma",
		"email":           "asha@example.com",
		"mobile":          "9876543210",
		"college_name":    "NIT Trichy",
		"branch":          "CSE",
		"year":            "3rd Year",
		"completion_date": "2026-06-30",
	}
}

func postJSON(t *testing.T, app *fiber.App, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterStudent(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/students/register/1", validRegistration())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var student models.Student
	require.NoError(t, database.Database.Db.First(&student).Error)
	assert.Equal(t, "Asha Verma", student.FullName)
	assert.Equal(t, "Web Development", student.InternshipDomain)
	assert.Equal(t, models.PaymentPending, student.PaymentStatus)
	assert.Nil(t, student.TestPassed)
	assert.Nil(t, student.UserID)
	assert.Nil(t, student.CertificateNumber)
}

func TestRegisterStudentInvalidMobile(t *testing.T) {
	app := setupApp(t)

	body := validRegistration()
	body["mobile"] = "12345"

	resp := postJSON(t, app, "/students/register/1", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Student{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterStudentInvalidBranch(t *testing.T) {
	app := setupApp(t)

	body := validRegistration()
	body["branch"] = "Aerospace"

	resp := postJSON(t, app, "/students/register/1", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRegisterStudentUnknownTrack(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/students/register/42", validRegistration())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisterStudentInactiveTrack(t *testing.T) {
	app := setupApp(t)

	require.NoError(t, database.Database.Db.Create(&models.CertificateTrack{
		CourseName: "Retired Track",
		Price:      99,
		IsActive:   false,
	}).Error)

	resp := postJSON(t, app, "/students/register/2", validRegistration())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetStudent(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/students/register/1", validRegistration())
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/students/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/students/999", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
