package openai

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Config holds settings for an OpenAI-compatible chat-completions endpoint.
type Config struct {
	APIKey      string
	BaseURL     string // e.g. https://api.openai.com/v1
	Model       string
	Temperature float32
	Timeout     time.Duration
	MaxRetries  uint
}

// Client talks to an OpenAI-compatible API. It implements both the
// classification and insight generation collaborators.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
