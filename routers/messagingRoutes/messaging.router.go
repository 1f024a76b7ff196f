package messagingRoutes

import (
	telegramController "microlearn/controllers/telegram"
	whatsappController "microlearn/controllers/whatsapp"
	"microlearn/middleware"
	whatsappValidator "microlearn/validators/whatsapp"

	"github.com/gofiber/fiber/v2"
)

// SetupMessagingRoutes sets up the WhatsApp proxy and Telegram webhook routes
func SetupMessagingRoutes(app *fiber.App) {
	whatsappGroup := app.Group("/whatsapp")

	whatsappGroup.Post("/proxy", middleware.JWTMiddleware, whatsappValidator.Proxy(), whatsappController.Proxy)
	whatsappGroup.Post("/sync", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware, whatsappController.Sync)
	whatsappGroup.Get("/templates", middleware.JWTMiddleware, whatsappController.ListTemplates)
	whatsappGroup.Get("/contacts", middleware.JWTMiddleware, whatsappController.ListContacts)

	// Telegram calls this directly; authentication is the secret webhook path
	app.Post("/telegram/webhook", telegramController.Webhook)
}
