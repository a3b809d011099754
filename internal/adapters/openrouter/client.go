// Package openrouter calls the OpenRouter chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"siteintel/internal/adapters/vendorhttp"
	"siteintel/internal/domain"
	"siteintel/internal/logger"
)

const (
	vendor       = "openrouter"
	DefaultModel = "anthropic/claude-3.5-sonnet"
	maxTokens    = 1000
	temperature  = 0.7
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
	log  logger.Logger
}

func New(cfg Config, log logger.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{cfg: cfg, http: vendorhttp.NewClient(cfg.Timeout), log: log.With(logger.String("vendor", vendor))}
}

func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

type chatReq struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResp struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete sends a system prompt and one user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("%w: openrouter key not configured", domain.ErrVendorUnavailable)
	}
	b, err := json.Marshal(chatReq{
		Model: c.cfg.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	body, err := vendorhttp.Do(c.http, vendor, req, http.StatusOK)
	if err != nil {
		return "", err
	}
	var out chatResp
	if err := json.Unmarshal(body, &out); err != nil {
		return "", vendorhttp.Invalid(vendor, "%v", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", vendorhttp.Invalid(vendor, "no content in completion")
	}
	return out.Choices[0].Message.Content, nil
}
