package adminAuthController

import (
	"strings"
	"time"

	"certify/database"
	"certify/middleware"
	"certify/models"
	"certify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// sessionTTL is how long an issued admin token stays valid
const sessionTTL = 24 * time.Hour

// authResponse is the wire contract of the admin auth endpoint:
// {success, token?, message?}
func authResponse(c *fiber.Ctx, statusCode int, success bool, token, message string) error {
	body := fiber.Map{"success": success}
	if token != "" {
		body["token"] = token
	}
	if message != "" {
		body["message"] = message
	}
	return c.Status(statusCode).JSON(body)
}

// AdminAuth handles both login and the one-time setup action
func AdminAuth(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminAuth").(*struct {
		Action   string `json:"action"`
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return authResponse(c, fiber.StatusBadRequest, false, "", "Invalid request")
	}

	switch reqData.Action {
	case "login":
		return adminLogin(c, reqData.Username, reqData.Password)
	case "setup":
		return adminSetup(c, reqData.Username, reqData.Password)
	default:
		return authResponse(c, fiber.StatusBadRequest, false, "", "Invalid action")
	}
}

// adminLogin compares the sha256 digest of the submitted password with
// the stored hash. Unknown username and wrong password are deliberately
// indistinguishable to the caller.
func adminLogin(c *fiber.Ctx, username, password string) error {
	passwordHash := utils.HashAdminPassword(password)

	var cred models.AdminCredential
	err := database.Database.Db.
		Where("username = ? AND password_hash = ?", username, passwordHash).
		First(&cred).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return authResponse(c, fiber.StatusUnauthorized, false, "", "Invalid credentials")
		}
		logrus.Errorf("Admin login lookup failed: %v", err)
		return authResponse(c, fiber.StatusInternalServerError, false, "", "Database error")
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		logrus.Errorf("Failed to generate session token: %v", err)
		return authResponse(c, fiber.StatusInternalServerError, false, "", "Database error")
	}

	session := models.AdminSession{
		Token:     token,
		Username:  cred.Username,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := database.Database.Db.Create(&session).Error; err != nil {
		logrus.Errorf("Failed to persist admin session: %v", err)
		return authResponse(c, fiber.StatusInternalServerError, false, "", "Database error")
	}

	return authResponse(c, fiber.StatusOK, true, token, "")
}

// adminSetup bootstraps the single admin account. Permitted only while
// no credential row exists.
func adminSetup(c *fiber.Ctx, username, password string) error {
	var count int64
	if err := database.Database.Db.Model(&models.AdminCredential{}).Count(&count).Error; err != nil {
		logrus.Errorf("Admin setup count failed: %v", err)
		return authResponse(c, fiber.StatusInternalServerError, false, "", "Database error")
	}
	if count > 0 {
		return authResponse(c, fiber.StatusBadRequest, false, "", "Admin already exists")
	}

	cred := models.AdminCredential{
		Username:     strings.TrimSpace(username),
		PasswordHash: utils.HashAdminPassword(password),
	}
	if err := database.Database.Db.Create(&cred).Error; err != nil {
		logrus.Errorf("Admin setup insert failed: %v", err)
		return authResponse(c, fiber.StatusInternalServerError, false, "", "Database error")
	}

	return authResponse(c, fiber.StatusOK, true, "", "Admin account created")
}

// AdminLogout deletes the presented session so the token stops working
// immediately
func AdminLogout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	database.Database.Db.Where("token = ?", token).Delete(&models.AdminSession{})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
