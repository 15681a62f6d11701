package authController

import (
	"time"

	"certify/config"
	"certify/database"
	"certify/middleware"
	"certify/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Mobile   string `json:"mobile"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		logrus.Errorf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		logrus.Errorf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to signup user!", nil)
	}

	if err := db.Create(&models.UserRole{UserID: newUser.ID, Role: "student"}).Error; err != nil {
		logrus.Errorf("Error seeding user role: %v", err)
	}

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	result := database.Database.Db.
		Where("email = ? AND is_deleted = ?", reqData.Email, false).
		First(&user)

	// Same message for unknown email and wrong password
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logrus.Errorf("Login lookup failed: %v", result.Error)
		}
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	user.LastLogin = time.Now()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		logrus.Errorf("Error saving last login time: %v", err)
	}

	user.Password = ""

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}
