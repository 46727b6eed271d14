package gemini

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/gyejin/reactboard-server/internal/config"
)

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			APIKey:          apiKey,
			Model:           "gemini-2.0-flash-001",
			Temperature:     0.7,
			MaxOutputTokens: 1024,
			TimeoutSeconds:  10,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompleteDisabledWithoutKey(t *testing.T) {
	for _, key := range []string{"", "YOUR_API_KEY_HERE", "short"} {
		client := NewClient(testConfig(key), testLogger())
		if client.Enabled() {
			t.Fatalf("expected client disabled for key %q", key)
		}
		result := client.Complete(context.Background(), "안녕")
		if result.Kind != OutcomeDisabled {
			t.Fatalf("expected OutcomeDisabled, got %v", result.Kind)
		}
	}
}

func TestCompleteTimeout(t *testing.T) {
	client := NewClient(testConfig("test-key-0123456789"), testLogger())
	client.timeout = 20 * time.Millisecond
	client.generate = func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	start := time.Now()
	result := client.Complete(context.Background(), "느린 질문")
	if result.Kind != OutcomeTimeout {
		t.Fatalf("expected OutcomeTimeout, got %v", result.Kind)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("timeout took too long: %v", elapsed)
	}
}

func TestCompleteSuccess(t *testing.T) {
	client := NewClient(testConfig("test-key-0123456789"), testLogger())
	client.generate = func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "반갑습니다."}}}},
			},
		}, nil
	}

	result := client.Complete(context.Background(), "안녕")
	if result.Kind != OutcomeSuccess {
		t.Fatalf("expected OutcomeSuccess, got %v", result.Kind)
	}
	if result.Text != "반갑습니다." {
		t.Fatalf("unexpected text: %q", result.Text)
	}
}

func TestClassifyError(t *testing.T) {
	client := NewClient(testConfig("test-key-0123456789"), testLogger())

	cases := []struct {
		name string
		err  error
		want OutcomeKind
	}{
		{
			name: "api_error_503",
			err:  fmt.Errorf("generate content: %w", &genai.APIError{Code: 503, Message: "overloaded"}),
			want: OutcomeUnavailable,
		},
		{
			name: "invalid_key",
			err:  fmt.Errorf("generate content: API key not valid. Please pass a valid API key."),
			want: OutcomeInvalidKey,
		},
		{
			name: "unavailable_string",
			err:  fmt.Errorf("rpc error: code = UNAVAILABLE"),
			want: OutcomeUnavailable,
		},
		{
			name: "deadline",
			err:  fmt.Errorf("generate content: %w", context.DeadlineExceeded),
			want: OutcomeTimeout,
		},
		{
			name: "unknown",
			err:  fmt.Errorf("something odd"),
			want: OutcomeUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := client.classifyError(tc.err)
			if result.Kind != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, result.Kind)
			}
		})
	}
}

func TestExtractTextBlocked(t *testing.T) {
	if got := extractText(nil); got.Kind != OutcomeBlocked {
		t.Fatalf("nil response: expected OutcomeBlocked, got %v", got.Kind)
	}
	empty := &genai.GenerateContentResponse{}
	if got := extractText(empty); got.Kind != OutcomeBlocked {
		t.Fatalf("no candidates: expected OutcomeBlocked, got %v", got.Kind)
	}
	blank := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "  "}}}},
		},
	}
	if got := extractText(blank); got.Kind != OutcomeBlocked {
		t.Fatalf("blank text: expected OutcomeBlocked, got %v", got.Kind)
	}
}
