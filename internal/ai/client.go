// Package ai wraps the language-model collaborator. The service is
// assumed to be unavailable at any time; every caller degrades to its
// deterministic fallback when calls here fail.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable is returned when the model service cannot be reached or
// lists no usable model.
var ErrUnavailable = errors.New("ai: model service unavailable")

// Client is the text-completion contract the pipeline depends on.
// Implementations must bound every call with a timeout.
type Client interface {
	// Available probes the service cheaply.
	Available(ctx context.Context) bool
	// ListModels returns the names of models the service offers.
	ListModels(ctx context.Context) ([]string, error)
	// Generate sends a prompt and returns the completion text.
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Config holds model-service settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // OpenAI-compatible endpoint, e.g. a local model server
	Timeout time.Duration
}

// OpenAIClient implements Client against any OpenAI-compatible endpoint.
// One instance is shared across concurrent runs.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration

	mu       sync.Mutex
	resolved string
}

// NewOpenAI builds a client. Model must be non-empty; it is matched
// against the service's model list on first use.
func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClient{client: c, model: cfg.Model, timeout: timeout}
}

// Available reports whether the service answers a model listing within a
// short probe window.
func (o *OpenAIClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := o.client.ListModels(ctx)
	return err == nil
}

// ListModels returns the service's model names.
func (o *OpenAIClient) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	resp, err := o.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("ai: list models: %w", err)
	}
	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.ID)
	}
	return names, nil
}

// resolveModel matches the configured model name against the service's
// list: exact match wins, then the first listed name containing the
// configured name. Embedding models cannot generate text and are never
// selected.
func (o *OpenAIClient) resolveModel(ctx context.Context) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.resolved != "" {
		return o.resolved, nil
	}
	names, err := o.ListModels(ctx)
	if err != nil {
		return "", err
	}
	want := strings.ToLower(o.model)
	var partial string
	for _, n := range names {
		ln := strings.ToLower(n)
		if strings.Contains(ln, "embed") {
			continue
		}
		if ln == want {
			o.resolved = n
			return n, nil
		}
		if partial == "" && want != "" && strings.Contains(ln, want) {
			partial = n
		}
	}
	if partial != "" {
		o.resolved = partial
		return partial, nil
	}
	return "", fmt.Errorf("%w: no generatable model matching %q", ErrUnavailable, o.model)
}

// Generate sends a single-user-message chat completion and returns the
// text. The call is bounded by the configured timeout.
func (o *OpenAIClient) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	model, err := o.resolveModel(ctx)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		slog.Error("ai: generate error", "err", err)
		return "", fmt.Errorf("ai: generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
