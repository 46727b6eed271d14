package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/gyejin/reactboard-server/internal/config"
)

// Client 는 Gemini 호출을 담당한다.
// 키가 유효하지 않으면 비활성 상태로 생성되며 모든 호출이 OutcomeDisabled 를 반환한다.
type Client struct {
	cfg     *config.Config
	logger  *slog.Logger
	enabled bool
	timeout time.Duration

	mu     sync.Mutex
	client *genai.Client

	// generate 는 테스트에서 실제 API 호출을 대체하기 위해 주입 가능하다.
	generate func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// NewClient 는 Gemini 클라이언트를 생성한다.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	c := &Client{
		cfg:     cfg,
		logger:  logger,
		enabled: cfg.Gemini.KeyUsable(),
		timeout: cfg.Gemini.Timeout(),
	}
	c.generate = c.generateContent
	return c
}

// Enabled 는 생성형 기능 사용 가능 여부를 반환한다.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Complete 는 프롬프트 하나로 텍스트 응답을 생성한다.
// 마감시간을 넘기면 호출을 취소하고 OutcomeTimeout 으로 돌아온다.
func (c *Client) Complete(ctx context.Context, prompt string) Result {
	if !c.enabled {
		return Result{Kind: OutcomeDisabled}
	}

	genCtx, cancel := context.WithCancel(ctx)

	type generation struct {
		response *genai.GenerateContentResponse
		err      error
	}
	done := make(chan generation, 1)
	go func() {
		response, err := c.generate(genCtx, prompt)
		done <- generation{response: response, err: err}
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		cancel()
		if out.err != nil {
			return c.classifyError(out.err)
		}
		return extractText(out.response)
	case <-timer.C:
		cancel()
		go func() {
			out := <-done
			c.logger.Debug("gemini_late_result_discarded",
				"had_error", out.err != nil)
		}()
		return Result{Kind: OutcomeTimeout, Err: context.DeadlineExceeded}
	}
}

func (c *Client) generateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	client, err := c.selectClient(ctx)
	if err != nil {
		return nil, err
	}

	generateConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.cfg.Gemini.Temperature)),
		MaxOutputTokens: int32(c.cfg.Gemini.MaxOutputTokens),
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	response, err := client.Models.GenerateContent(ctx, c.cfg.Gemini.Model, contents, generateConfig)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return response, nil
}

func (c *Client) selectClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  c.cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(c.timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.client = client
	return client, nil
}

// classifyError 는 API 오류를 사용자 문구 분류로 사상한다.
func (c *Client) classifyError(err error) Result {
	kind := OutcomeUnknown

	var apiErr *genai.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Code == 503:
		kind = OutcomeUnavailable
	case strings.Contains(err.Error(), "API key not valid"):
		kind = OutcomeInvalidKey
	case errors.Is(err, context.DeadlineExceeded):
		kind = OutcomeTimeout
	case strings.Contains(err.Error(), "503"),
		strings.Contains(err.Error(), "UNAVAILABLE"):
		kind = OutcomeUnavailable
	}

	c.logger.Error("gemini_generate_failed",
		"kind", int(kind),
		"error", err)
	return Result{Kind: kind, Err: err}
}

// extractText 는 응답 후보의 본문을 꺼내고, 비어 있으면 차단으로 간주한다.
func extractText(response *genai.GenerateContentResponse) Result {
	if response == nil || len(response.Candidates) == 0 {
		return Result{Kind: OutcomeBlocked}
	}
	text := response.Text()
	if strings.TrimSpace(text) == "" {
		return Result{Kind: OutcomeBlocked}
	}
	return Result{Kind: OutcomeSuccess, Text: text}
}
