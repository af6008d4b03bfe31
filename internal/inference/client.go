// Package inference wraps the external content-analysis engine behind
// a small interface so success, unsupported-video, and failure paths
// can be exercised without a real engine.
package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"github.com/go-resty/resty/v2"
)

// VideoMeta is the descriptive metadata the engine reports for a
// source URL before any deep analysis runs.
type VideoMeta struct {
	Author       string `json:"author"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// RawScript is one transcript segment as the engine emits it, keyed in
// the enclosing map by its timestamp.
type RawScript struct {
	Script     string  `json:"script"`
	Importance float64 `json:"importance"`
}

// RawKeyword is one keyword spot as the engine emits it. The enclosing
// map key is an arbitrary engine index and carries no meaning.
type RawKeyword struct {
	Timestamp float64 `json:"timestamp"`
	Keyword   string  `json:"keyword"`
	Score     float64 `json:"score"`
}

// Analysis is the engine's structured output triple.
type Analysis struct {
	Scripts     map[string]RawScript  `json:"scripts"`
	Keywords    map[string]RawKeyword `json:"keywords"`
	Frequencies map[string]int64      `json:"frequencies"`
}

// ErrInvalidSource marks a source locator the engine rejected outright.
// Callers surface it as a request-validation failure, not a server error.
var ErrInvalidSource = errors.New("invalid source locator")

// Engine is the content-analysis capability. Describe fails on a
// structurally invalid source; Analyze returns
// domain.ErrUnsupportedVideo when the engine cannot process the video.
type Engine interface {
	Describe(ctx context.Context, source string) (*VideoMeta, error)
	Analyze(ctx context.Context, source string) (*Analysis, error)
}

// Config holds configuration for the HTTP engine client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is the HTTP implementation of Engine.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates an engine client.
// Parameters:
//   - cfg: engine configuration including base URL and timeout.
// Returns:
//   - *Client: initialized HTTP client wrapper.
func NewClient(cfg *Config) *Client {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}
	// Timeout bounds the whole ingestion request; there are no retries
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client.SetTimeout(timeout)

	return &Client{
		http:    client,
		baseURL: cfg.BaseURL,
	}
}

type describeRequest struct {
	Source string `json:"source"`
}

type analyzeResponse struct {
	Supported   bool                  `json:"supported"`
	Scripts     map[string]RawScript  `json:"scripts"`
	Keywords    map[string]RawKeyword `json:"keywords"`
	Frequencies map[string]int64      `json:"frequencies"`
}

// Describe fetches descriptive metadata for a source URL.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - source: canonical source locator of the video.
// Returns:
//   - *VideoMeta: author, title, and thumbnail URL.
//   - error: non-nil if the engine rejects the locator or the call fails.
func (c *Client) Describe(ctx context.Context, source string) (*VideoMeta, error) {
	var meta VideoMeta
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(describeRequest{Source: source}).
		SetResult(&meta).
		Post(c.baseURL + "/describe")
	if err != nil {
		return nil, fmt.Errorf("failed to call inference engine: %w", err)
	}
	if resp.StatusCode() >= 400 && resp.StatusCode() < 500 {
		return nil, fmt.Errorf("%w: HTTP %d: %s",
			ErrInvalidSource, resp.StatusCode(), string(resp.Body()))
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("inference engine returned error: HTTP %d: %s",
			resp.StatusCode(), string(resp.Body()))
	}
	return &meta, nil
}

// Analyze runs deep analysis for a source URL.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - source: canonical source locator of the video.
// Returns:
//   - *Analysis: scripts/keywords/frequencies triple.
//   - error: domain.ErrUnsupportedVideo if the engine cannot analyze
//     the video, otherwise the transport or HTTP error.
func (c *Client) Analyze(ctx context.Context, source string) (*Analysis, error) {
	var result analyzeResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(describeRequest{Source: source}).
		SetResult(&result).
		Post(c.baseURL + "/analyze")
	if err != nil {
		return nil, fmt.Errorf("failed to call inference engine: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("inference engine returned error: HTTP %d: %s",
			resp.StatusCode(), string(resp.Body()))
	}
	if !result.Supported {
		return nil, domain.ErrUnsupportedVideo
	}
	return &Analysis{
		Scripts:     result.Scripts,
		Keywords:    result.Keywords,
		Frequencies: result.Frequencies,
	}, nil
}
