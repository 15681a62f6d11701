package database

import (
	"fmt"
	"os"

	"certify/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	RunMigrations(db)

	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations and seeds required settings
func RunMigrations(db *gorm.DB) {
	logrus.Info("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.CertificateTrack{},
		&models.Student{},
		&models.MCQQuestion{},
		&models.TestAttempt{},
		&models.AdminCredential{},
		&models.AdminSession{},
		&models.PlatformSetting{},
	)
	if err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}

	seedSettings(db)

	logrus.Info("Migrations completed successfully.")
}

// seedSettings makes sure the settings the payment page depends on exist
func seedSettings(db *gorm.DB) {
	var setting models.PlatformSetting
	if err := db.Where("setting_key = ?", models.SettingUpiID).First(&setting).Error; err != nil {
		db.Create(&models.PlatformSetting{
			SettingKey:   models.SettingUpiID,
			SettingValue: "payments@upi",
		})
		logrus.Warnf("Seeded placeholder %s setting. Update it from the admin panel.", models.SettingUpiID)
	}
}
