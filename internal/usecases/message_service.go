package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"jawab_aja/internal/entities"
	"jawab_aja/internal/interfaces"
)

// Fixed reply texts. Sent with Markdown formatting enabled.
const (
	welcomeReply = "🤖 **Hello! I am your AI Assistant.**\n\n" +
		"I am powered by Google Gemini and ready to help. " +
		"Send me a message to start chatting, brainstorm ideas, or ask any questions!"

	emptyReply = "I'm sorry, my AI engine couldn't process that. Could you try rephrasing?"

	quotaReply = "⚠️ **API Limit Reached:** My AI engine is receiving too many requests " +
		"right now or has reached its daily capacity. Please try again later or tomorrow!"

	configReply = "🛑 **Configuration Error:** My API key seems to be invalid or expired. " +
		"Please report this to the Developer!"

	systemReply = "⚠️ **System Error:** My AI engine is currently unreachable or busy. " +
		"Please try again in a moment!"
)

// MessageService turns one inbound chat message into exactly one reply.
type MessageService struct {
	ai        interfaces.AIClient
	messenger interfaces.Messenger
	logger    zerolog.Logger
}

func NewMessageService(ai interfaces.AIClient, messenger interfaces.Messenger, logger zerolog.Logger) *MessageService {
	return &MessageService{ai: ai, messenger: messenger, logger: logger}
}

// ProcessMessage handles a plain text message: it builds a contextual prompt,
// asks the AI engine for a reply and sends the result back to the originating
// chat. Engine failures never escape; they are converted to one of the fixed
// fallback replies. An error is returned only when the reply itself cannot be
// delivered.
func (s *MessageService) ProcessMessage(ctx context.Context, msg entities.Message) error {
	if err := s.messenger.SendTyping(msg.ChatID); err != nil {
		s.logger.Debug().Err(err).Int64("chat_id", msg.ChatID).Msg("typing indicator failed")
	}

	reply := s.generateReply(ctx, msg)
	return s.messenger.SendMessage(msg.ChatID, reply)
}

// Greet sends the static welcome message for the /start command.
func (s *MessageService) Greet(chatID int64) error {
	return s.messenger.SendMessage(chatID, welcomeReply)
}

func (s *MessageService) generateReply(ctx context.Context, msg entities.Message) string {
	text, err := s.ai.GenerateReply(ctx, contextualPrompt(msg))
	if err != nil {
		s.logger.Error().Err(err).
			Int64("user_id", msg.UserID).
			Str("user_name", msg.UserName).
			Msg("failed to generate AI response")

		switch {
		case errors.Is(err, interfaces.ErrQuotaExhausted):
			return quotaReply
		case errors.Is(err, interfaces.ErrInvalidAPIKey):
			return configReply
		default:
			return systemReply
		}
	}

	if strings.TrimSpace(text) == "" {
		return emptyReply
	}
	return text
}

// contextualPrompt tells the model who is speaking before the actual message.
// Telegram does not guarantee a sender name on every update.
func contextualPrompt(msg entities.Message) string {
	if msg.UserName == "" {
		return fmt.Sprintf("The user said: '%s'", msg.Content)
	}
	return fmt.Sprintf("The user you are talking to is named %s. They said: '%s'", msg.UserName, msg.Content)
}
