package telegramController

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webhookApp() *fiber.App {
	app := fiber.New()
	app.Post("/telegram/webhook", Webhook)
	return app
}

func TestWebhookRejectsMalformedUpdate(t *testing.T) {
	app := webhookApp()

	req := httptest.NewRequest("POST", "/telegram/webhook", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// Non-text updates (joins, edits, reactions) are acknowledged and dropped
// so Telegram does not retry them.
func TestWebhookAcknowledgesNonTextUpdate(t *testing.T) {
	app := webhookApp()

	req := httptest.NewRequest("POST", "/telegram/webhook", strings.NewReader(`{"update_id": 7}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
