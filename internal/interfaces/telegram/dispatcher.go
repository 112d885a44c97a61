package telegram

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"jawab_aja/internal/entities"
	"jawab_aja/internal/interfaces"
	"jawab_aja/internal/usecases"
)

// Dispatcher routes inbound Telegram updates to their handlers. It is also
// the global error handler: a panic or error escaping any handler is logged
// and reported once, best effort, to the developer chat.
type Dispatcher struct {
	svc             *usecases.MessageService
	messenger       interfaces.Messenger
	developerChatID int64 // 0 disables alerts
	sem             chan struct{}
	logger          zerolog.Logger
}

func NewDispatcher(svc *usecases.MessageService, messenger interfaces.Messenger, developerChatID int64, maxInFlight int, logger zerolog.Logger) *Dispatcher {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &Dispatcher{
		svc:             svc,
		messenger:       messenger,
		developerChatID: developerChatID,
		sem:             make(chan struct{}, maxInFlight),
		logger:          logger,
	}
}

// Run consumes updates until the channel closes, then waits for in-flight
// handlers to finish. Each update is handled in its own goroutine, with the
// number of concurrent handlers capped by the in-flight bound.
func (d *Dispatcher) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	var wg sync.WaitGroup
	for update := range updates {
		d.sem <- struct{}{}
		wg.Add(1)
		go func(update tgbotapi.Update) {
			defer wg.Done()
			defer func() { <-d.sem }()
			d.Handle(ctx, update)
		}(update)
	}
	wg.Wait()
}

// Handle processes a single update to completion. Only two update shapes are
// consumed: the /start command and plain text messages. Everything else is
// ignored.
func (d *Dispatcher) Handle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			d.reportError(fmt.Errorf("panic while handling update: %v", r))
		}
	}()

	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return
	}

	if msg.IsCommand() {
		if msg.Command() == "start" {
			if err := d.svc.Greet(msg.Chat.ID); err != nil {
				d.reportError(err)
			}
		}
		return
	}

	inbound := entities.Message{
		ChatID:  msg.Chat.ID,
		Content: msg.Text,
	}
	if msg.From != nil {
		inbound.UserID = msg.From.ID
		inbound.UserName = msg.From.FirstName
	}

	if err := d.svc.ProcessMessage(ctx, inbound); err != nil {
		d.reportError(err)
	}
}

// reportError logs a handler failure and attempts exactly one alert to the
// developer chat. A failed alert is logged and swallowed so the dispatch loop
// cannot be taken down by its own supervision.
func (d *Dispatcher) reportError(err error) {
	d.logger.Error().Err(err).Msg("exception while handling an update")

	if d.developerChatID == 0 {
		d.logger.Debug().Msg("developer chat not configured, alert skipped")
		return
	}

	alert := fmt.Sprintf("🚨 **SYSTEM ALERT: BOT ENCOUNTERED AN ERROR!** 🚨\n\n**Error Details:**\n`%v`", err)
	if sendErr := d.messenger.SendMessage(d.developerChatID, alert); sendErr != nil {
		d.logger.Error().Err(sendErr).Msg("failed to deliver error alert to developer")
	}
}
