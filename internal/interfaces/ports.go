package interfaces

import (
	"context"
	"errors"
)

// Error kinds an AIClient implementation may report. Any other failure is
// treated as a generic engine error.
var (
	ErrQuotaExhausted = errors.New("quota exhausted")
	ErrInvalidAPIKey  = errors.New("api key invalid or expired")
)

type AIClient interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

type Messenger interface {
	SendMessage(chatID int64, text string) error
	SendTyping(chatID int64) error
}
