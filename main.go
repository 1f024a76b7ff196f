package main

import (
	"log"

	"microlearn/config"
	"microlearn/database"
	adminRoutes "microlearn/routers/adminRoutes"
	authRoutes "microlearn/routers/authRoutes"
	courseRoutes "microlearn/routers/courseRoutes"
	messagingRoutes "microlearn/routers/messagingRoutes"
	"microlearn/utils"

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

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	messagingRoutes.SetupMessagingRoutes(app)

	// Periodic WhatsApp template/contact cache refresh
	scheduler := utils.StartSyncScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
