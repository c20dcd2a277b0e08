package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram posts the report to a chat through a bot.
type Telegram struct {
	token    string
	chatID   int64
	endpoint string
}

func NewTelegram(token string, chatID int64) *Telegram {
	return &Telegram{
		token:    token,
		chatID:   chatID,
		endpoint: tgbotapi.APIEndpoint,
	}
}

func (t *Telegram) Name() string {
	return "telegram"
}

func (t *Telegram) Notify(_ context.Context, subject, body string) error {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(t.token, t.endpoint)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	msg := tgbotapi.NewMessage(t.chatID, subject+"\n"+body)
	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send to chat %d: %w", t.chatID, err)
	}
	return nil
}
