package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Router selects the best provider based on availability, walking an
// ordered fallback chain.
type Router struct {
	providers map[string]Provider
	fallback  []string // ordered fallback chain
	mu        sync.RWMutex
}

// NewRouter creates a new AI router.
func NewRouter() *Router {
	return &Router{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider to the router.
func (r *Router) Register(name string, provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = provider
	r.fallback = append(r.fallback, name)
}

// Complete routes a request to the first provider that succeeds.
func (r *Router) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.fallback {
		provider := r.providers[name]

		resp, err := provider.Complete(ctx, req)
		if err != nil {
			slog.Warn("AI provider failed, trying next",
				"provider", name,
				"task", req.Task.String(),
				"error", err,
			)
			continue
		}

		slog.Debug("AI request completed",
			"provider", name,
			"task", req.Task.String(),
			"model", resp.Model,
			"input_tokens", resp.InputTokens,
			"output_tokens", resp.OutputTokens,
		)
		return resp, nil
	}

	return CompletionResponse{}, fmt.Errorf("all AI providers failed")
}

// StreamComplete routes a streaming request to the first provider that
// accepts it. Chunk-level failures after acceptance are not retried.
func (r *Router) StreamComplete(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.fallback {
		provider := r.providers[name]

		ch, err := provider.StreamComplete(ctx, req)
		if err != nil {
			slog.Warn("AI provider refused stream, trying next",
				"provider", name,
				"task", req.Task.String(),
				"error", err,
			)
			continue
		}
		return ch, nil
	}

	return nil, fmt.Errorf("all AI providers failed")
}

// GenerateImage routes an image request to the first registered provider
// that can generate images.
func (r *Router) GenerateImage(ctx context.Context, req ImageRequest) (ImageResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.fallback {
		gen, ok := r.providers[name].(ImageGenerator)
		if !ok {
			continue
		}
		resp, err := gen.GenerateImage(ctx, req)
		if err != nil {
			slog.Warn("image generation failed, trying next",
				"provider", name,
				"error", err,
			)
			continue
		}
		return resp, nil
	}

	return ImageResponse{}, fmt.Errorf("no provider could generate an image")
}

// HasProvider returns true if at least one provider is registered.
func (r *Router) HasProvider() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers) > 0
}
