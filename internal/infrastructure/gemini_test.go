package infrastructure

import (
	"errors"
	"testing"

	"google.golang.org/genai"

	"jawab_aja/internal/interfaces"
)

func TestClassifyGenerateErrorStructured(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "429 maps to quota regardless of message text",
			err:  genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "try later"},
			want: interfaces.ErrQuotaExhausted,
		},
		{
			name: "401 maps to invalid key",
			err:  genai.APIError{Code: 401, Status: "UNAUTHENTICATED", Message: "who are you"},
			want: interfaces.ErrInvalidAPIKey,
		},
		{
			name: "403 maps to invalid key",
			err:  genai.APIError{Code: 403, Status: "PERMISSION_DENIED", Message: "no"},
			want: interfaces.ErrInvalidAPIKey,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := classifyGenerateError(tc.err)
			if !errors.Is(got, tc.want) {
				t.Errorf("classifyGenerateError(%v) = %v, want kind %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassifyGenerateErrorSubstringFallback(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"429 in text", errors.New("Error: 429 Too Many Requests"), interfaces.ErrQuotaExhausted},
		{"quota in text", errors.New("daily QUOTA reached"), interfaces.ErrQuotaExhausted},
		{"exhausted in text", errors.New("resource exhausted"), interfaces.ErrQuotaExhausted},
		{"api_key in text", errors.New("API_KEY_INVALID: check your key"), interfaces.ErrInvalidAPIKey},
		{"key invalid in text", errors.New("provided key invalid"), interfaces.ErrInvalidAPIKey},
		{"bad request mentioning api key", errors.New("400: API key not valid"), interfaces.ErrInvalidAPIKey},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := classifyGenerateError(tc.err)
			if !errors.Is(got, tc.want) {
				t.Errorf("classifyGenerateError(%v) = %v, want kind %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassifyGenerateErrorUnknownPassesThrough(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset by peer")
	got := classifyGenerateError(err)

	if got != err {
		t.Errorf("classifyGenerateError() = %v, want original error unchanged", got)
	}
	if errors.Is(got, interfaces.ErrQuotaExhausted) || errors.Is(got, interfaces.ErrInvalidAPIKey) {
		t.Error("unknown error must not carry a known kind")
	}
}

func TestClassifyGenerateErrorKeepsCause(t *testing.T) {
	t.Parallel()

	cause := genai.APIError{Code: 429, Message: "slow down"}
	got := classifyGenerateError(cause)

	var apiErr genai.APIError
	if !errors.As(got, &apiErr) {
		// The original error text must still be reachable for logging even if
		// the value itself is not preserved in the chain.
		t.Fatalf("classified error %v lost the underlying APIError", got)
	}
	if apiErr.Code != 429 {
		t.Errorf("underlying code = %d, want 429", apiErr.Code)
	}
}
