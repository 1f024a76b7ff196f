package utils

import (
	"fmt"

	"microlearn/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// TelegramUpdate is the subset of Telegram's update payload the webhook
// cares about.
type TelegramUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  struct {
		MessageID int64  `json:"message_id"`
		Text      string `json:"text"`
		Chat      struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		From struct {
			ID        int64  `json:"id"`
			Username  string `json:"username"`
			FirstName string `json:"first_name"`
		} `json:"from"`
	} `json:"message"`
}

// SendTelegramMessage replies to a chat via the Bot API sendMessage call.
func SendTelegramMessage(chatID int64, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage",
		config.AppConfig.TelegramApiURL, config.AppConfig.TelegramBotToken)

	resp, err := resty.New().R().
		SetBody(map[string]interface{}{
			"chat_id": chatID,
			"text":    text,
		}).
		Post(url)
	if err != nil {
		return errors.Wrap(err, "telegram sendMessage failed")
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("telegram sendMessage failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
