// Package notify relays service announcements to an operator Telegram chat.
// Best-effort only: a relay failure is logged, never surfaced to the user
// operation that triggered it.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts announcements to one configured chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// PollCreated announces a freshly created group poll.
func (n *TelegramNotifier) PollCreated(groupID uint, title, creatorUsername string) {
	text := fmt.Sprintf("New poll in group %d: %q by %s", groupID, title, creatorUsername)
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		log.Printf("ERROR: Failed to relay poll announcement: %v", err)
	}
}
