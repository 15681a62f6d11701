package main

import (
	"log"

	"certify/config"
	"certify/database"
	adminRoutes "certify/routers/adminRoutes"
	applicationRoutes "certify/routers/applicationRoutes"
	authRoutes "certify/routers/authRoutes"
	catalogRoutes "certify/routers/catalogRoutes"
	"certify/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Payment screenshots are served back to the admin review page
	app.Static("/uploads", config.AppConfig.UploadDir)

	catalogRoutes.SetupCatalogRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Purge expired admin sessions in the background
	utils.StartSessionCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
