package infrastructure

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jawab_aja/internal/interfaces"
)

// TelegramClient wraps the bot API for message delivery and long polling.
type TelegramClient struct {
	bot *tgbotapi.BotAPI
}

var _ interfaces.Messenger = (*TelegramClient)(nil)

func NewTelegramClient(token string) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramClient{bot: bot}, nil
}

// Username returns the bot account name Telegram authenticated us as.
func (t *TelegramClient) Username() string {
	return t.bot.Self.UserName
}

func (t *TelegramClient) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramClient) SendTyping(chatID int64) error {
	_, err := t.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

// UpdatesChannel starts long polling and returns the inbound update stream.
func (t *TelegramClient) UpdatesChannel() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	return t.bot.GetUpdatesChan(u)
}

// Stop ends long polling; the updates channel closes once drained.
func (t *TelegramClient) Stop() {
	t.bot.StopReceivingUpdates()
}
