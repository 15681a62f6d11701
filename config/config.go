package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	BaseURL   string // public base URL used for screenshot links and verification URLs
	UploadDir string

	EmailSender string
	Password    string // SMTP App Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		BaseURL:   getEnv("BASE_URL", "http://localhost:3000"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		logrus.Warn("Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		logrus.Errorf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
