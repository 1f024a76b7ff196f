package adminRoutes

import (
	adminController "microlearn/controllers/admin"
	"microlearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin-privileged routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)

	// RPC-style user management: {action, payload}
	adminGroup.Post("/users", adminController.ManageUsers)

	adminGroup.Get("/analytics", adminController.GetAnalytics)
	adminGroup.Get("/contacts/:display_id", adminController.ResolveContact)
}
