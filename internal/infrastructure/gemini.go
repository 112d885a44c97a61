package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"jawab_aja/internal/interfaces"
)

// GeminiClient calls the Google Gemini generate-content API with a fixed
// model identifier.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ interfaces.AIClient = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model, timeout: timeout}, nil
}

// GenerateReply sends the prompt to the model and returns the generated text.
// The text may be blank; deciding what to do with a blank reply is the
// caller's business. Failures are classified into the error kinds declared in
// the interfaces package.
func (g *GeminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGenerateError(err)
	}
	return resp.Text(), nil
}

// classifyGenerateError maps an API failure to one of the known error kinds.
// The structured status code is checked first; some transports only surface
// raw text, so substring matching on the lowered message remains as fallback.
func classifyGenerateError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return fmt.Errorf("%w: %w", interfaces.ErrQuotaExhausted, err)
		case 401, 403:
			return fmt.Errorf("%w: %w", interfaces.ErrInvalidAPIKey, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"),
		strings.Contains(msg, "429"),
		strings.Contains(msg, "exhausted"):
		return fmt.Errorf("%w: %w", interfaces.ErrQuotaExhausted, err)
	case strings.Contains(msg, "api_key"),
		strings.Contains(msg, "api key"),
		strings.Contains(msg, "key invalid"):
		return fmt.Errorf("%w: %w", interfaces.ErrInvalidAPIKey, err)
	}
	return err
}
