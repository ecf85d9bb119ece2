package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"causalLab/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

type GeminiConfig struct {
	BaseURL  string
	APIKey   string
	Model    string
	Timeout  time.Duration
	RetryMax int
}

// GeminiRepository calls the generateContent endpoint and returns the text
// of the first candidate.
type GeminiRepository struct {
	cfg    GeminiConfig
	client *retryablehttp.Client
}

func NewGeminiRepository(cfg GeminiConfig) *GeminiRepository {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = leveledLogger{}
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.Timeout
	}

	return &GeminiRepository{
		cfg:    cfg,
		client: client,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

func (r *GeminiRepository) Generate(ctx context.Context, prompt string) (string, error) {
	if r.cfg.APIKey == "" {
		return "", fmt.Errorf("missing gemini api key")
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal json payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(r.cfg.BaseURL, "/"), r.cfg.Model)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, payload)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", r.cfg.APIKey)

	res, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		return "", fmt.Errorf("gemini returned %d: %s", res.StatusCode, msg)
	}

	var texts []string
	for _, t := range gjson.GetBytes(body, "candidates.0.content.parts.#.text").Array() {
		texts = append(texts, t.String())
	}
	if len(texts) == 0 {
		reason := gjson.GetBytes(body, "promptFeedback.blockReason").String()
		if reason != "" {
			return "", fmt.Errorf("gemini blocked prompt: %s", reason)
		}
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return strings.Join(texts, ""), nil
}

// leveledLogger routes retry logs through the app logger.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...interface{}) { logger.Error(msg, kv...) }
func (leveledLogger) Info(msg string, kv ...interface{})  { logger.Debug(msg, kv...) }
func (leveledLogger) Debug(msg string, kv ...interface{}) { logger.Debug(msg, kv...) }
func (leveledLogger) Warn(msg string, kv ...interface{})  { logger.Warn(msg, kv...) }
