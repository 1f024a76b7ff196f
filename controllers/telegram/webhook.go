package telegramController

import (
	"log"
	"time"

	"microlearn/database"
	"microlearn/models"
	"microlearn/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	startReply = "Welcome to Microlearn! You'll receive your course lessons here, one session at a time."
	helpReply  = "Commands:\n/start - subscribe to lesson delivery\n/help - show this message\nAnything else is echoed back."
)

// Webhook receives Telegram's update JSON and replies to the originating
// chat. Telegram retries failed deliveries, so the handler always answers
// 200 once the update has been parsed.
func Webhook(c *fiber.Ctx) error {
	var update utils.TelegramUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid update payload"})
	}

	chatID := update.Message.Chat.ID
	if chatID == 0 || update.Message.Text == "" {
		// Not a text message (edits, joins, etc.) - acknowledge and drop.
		return c.SendStatus(fiber.StatusOK)
	}

	var reply string
	switch update.Message.Text {
	case "/start":
		reply = startReply
	case "/help":
		reply = helpReply
	default:
		reply = update.Message.Text
	}

	if err := utils.SendTelegramMessage(chatID, reply); err != nil {
		log.Printf("Error replying to Telegram chat %d: %v", chatID, err)
	} else {
		event := models.AnalyticsEvent{
			Channel:    "telegram",
			EventType:  "replied",
			OccurredAt: time.Now(),
		}
		database.Database.Db.Create(&event)
	}

	return c.SendStatus(fiber.StatusOK)
}
