// Package ollama provides an HTTP client for a locally hosted Ollama
// generative-text endpoint. Requests are single-shot and non-streaming.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"travelguide_backend/platform/apperr"
	"travelguide_backend/platform/config"
)

const (
	defaultTemperature = 0.3
	defaultTopP        = 0.9
)

// Client talks to the Ollama /api/generate endpoint.
type Client struct {
	baseURL string
	model   string
	timeout time.Duration
	http    *http.Client
}

// NewClient creates a client for the configured Ollama instance.
// The timeout bounds each Generate call; the in-flight request is
// aborted when the deadline passes.
func NewClient(cfg config.OllamaConfig) *Client {
	return &Client{
		baseURL: cfg.GetOllamaURL(),
		model:   cfg.GetOllamaModel(),
		timeout: cfg.GetOllamaTimeout(),
		http:    &http.Client{},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type generateResponse struct {
	Response        string `json:"response"`
	Model           string `json:"model"`
	TotalDuration   int64  `json:"total_duration"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

// Result carries the raw model reply plus whatever metadata the
// endpoint reported.
type Result struct {
	Response        string
	Model           string
	TotalDuration   int64
	PromptEvalCount int
	EvalCount       int
}

// Generate sends the prompt to Ollama and returns the raw text reply.
// Failures are classified: a deadline hit maps to apperr.KindTimeout,
// any other transport failure or non-2xx status to apperr.KindUnavailable.
// Cancellation of the parent context is passed through unchanged so
// callers can tell a superseded request from an upstream failure.
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: defaultTemperature,
			TopP:        defaultTopP,
		},
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to encode upstream request", err)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to build upstream request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.Wrap(apperr.KindTimeout,
				fmt.Sprintf("Ollama did not respond within %dms", c.timeout.Milliseconds()), err)
		}
		if ctx.Err() != nil {
			// The caller gave up; not an upstream failure.
			return nil, ctx.Err()
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to contact Ollama", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperr.Unavailable("failed to contact Ollama").
			WithDetails(string(errText))
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to decode Ollama response", err)
	}

	return &Result{
		Response:        payload.Response,
		Model:           payload.Model,
		TotalDuration:   payload.TotalDuration,
		PromptEvalCount: payload.PromptEvalCount,
		EvalCount:       payload.EvalCount,
	}, nil
}
