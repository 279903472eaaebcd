// Package polish optionally rewrites the pipeline's draft through an
// OpenAI-compatible chat endpoint. The call is strictly best effort: any
// failure returns the draft unchanged at the caller, so the pipeline's
// latency and output stay bounded by the configured timeout.
package polish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// systemPrompt instructs the model to only smooth phrasing, never to
// change meaning, quantities, dates or place names. Kept in Danish, the
// language of the lines being polished.
const systemPrompt = "Du er en dansk tekst-normaliseringsassistent for fakturalinjer. " +
	"Du får en original tekst og et udkast fra en regelbaseret motor. " +
	"Din opgave er KUN at lave små justeringer for at gøre teksten mere naturlig, " +
	"men du må ikke ændre betydning, antal, datoer eller stednavne. " +
	"Returnér KUN én linje i HELT UPPERCASE, uden forklaring."

// Client is the polishing capability. Implementations must respect the
// context deadline; callers fall back to the unpolished draft on any
// error.
type Client interface {
	// Polish rewrites draft given the original input line.
	Polish(ctx context.Context, original, draft string) (string, error)
	// Enabled reports whether the client performs real calls.
	Enabled() bool
}

// Config configures the HTTP client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout bounds each call end to end.
	Timeout time.Duration
	// RequestsPerSecond throttles outbound calls; zero disables the
	// limiter.
	RequestsPerSecond float64
}

// NewClient returns an HTTP-backed client, or the noop client when no
// API key is configured.
func NewClient(cfg Config) Client {
	if cfg.APIKey == "" {
		return NoopClient{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: limiter,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// NoopClient never calls out; Polish returns the draft unchanged.
type NoopClient struct{}

func (NoopClient) Polish(_ context.Context, _, draft string) (string, error) {
	return draft, nil
}

func (NoopClient) Enabled() bool { return false }

// HTTPClient posts the draft to an OpenAI-compatible chat completions
// endpoint.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	model      string
	limiter    *rate.Limiter
	timeout    time.Duration
	httpClient *http.Client
}

func (c *HTTPClient) Enabled() bool { return true }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Polish sends one chat completion request. The configured timeout caps
// the whole call, including any limiter wait.
func (c *HTTPClient) Polish(ctx context.Context, original, draft string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("polish rate limit: %w", err)
		}
	}

	userPrompt := fmt.Sprintf("ORIGINAL: %s\nUDKAST: %s\nSVAR:", original, draft)
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode polish request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build polish request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("polish request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("polish endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode polish response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("polish response has no choices")
	}

	polished := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if polished == "" {
		return "", fmt.Errorf("polish response is empty")
	}
	return polished, nil
}
