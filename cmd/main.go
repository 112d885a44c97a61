package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"jawab_aja/internal/config"
	"jawab_aja/internal/infrastructure"
	"jawab_aja/internal/interfaces/telegram"
	"jawab_aja/internal/usecases"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Fatal().Err(err).Msg("configuration error")
	}

	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := infrastructure.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}

	telegramClient, err := infrastructure.NewTelegramClient(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Telegram")
	}
	logger.Info().Str("username", telegramClient.Username()).Msg("telegram bot connected")

	svc := usecases.NewMessageService(gemini, telegramClient, logger)
	dispatcher := telegram.NewDispatcher(svc, telegramClient, cfg.DeveloperChatID, cfg.MaxInFlight, logger)

	updates := telegramClient.UpdatesChannel()
	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		telegramClient.Stop()
	}()

	logger.Info().Str("model", cfg.GeminiModel).Msg("bot is online and listening")
	dispatcher.Run(ctx, updates)
}
