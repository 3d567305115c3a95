// Package ai provides a provider-agnostic gateway to generative-AI backends
// with task-based routing and streaming support.
package ai

import (
	"context"
	"encoding/json"
)

// TaskType defines the kind of AI task for routing purposes.
type TaskType int

const (
	TaskNarrative TaskType = iota
	TaskSuggestion
	TaskMentor
	TaskDeepDive
)

func (t TaskType) String() string {
	switch t {
	case TaskNarrative:
		return "narrative"
	case TaskSuggestion:
		return "suggestion"
	case TaskMentor:
		return "mentor"
	case TaskDeepDive:
		return "deep_dive"
	default:
		return "unknown"
	}
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the input to an AI completion.
type CompletionRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	Task        TaskType  `json:"task,omitempty"`

	// ResponseMIMEType and ResponseSchema constrain structured output
	// ("application/json" plus a schema). Providers that cannot enforce a
	// schema ignore ResponseSchema; callers must still validate the shape.
	ResponseMIMEType string          `json:"response_mime_type,omitempty"`
	ResponseSchema   json.RawMessage `json:"response_schema,omitempty"`
}

// CompletionResponse is the output from an AI completion.
type CompletionResponse struct {
	Content      string `json:"content"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// TotalTokens returns the sum of input and output tokens.
func (r CompletionResponse) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// StreamChunk represents a streaming response chunk.
type StreamChunk struct {
	Content string
	Done    bool
	Error   error
}

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxTokens   int    `json:"max_tokens"`
	Description string `json:"description"`
}

// Provider is the interface all AI providers must implement.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
	StreamComplete(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)
	Models() []ModelInfo
	HealthCheck(ctx context.Context) error
}

// ImageRequest is the input to an image generation call.
type ImageRequest struct {
	Prompt      string `json:"prompt"`
	Model       string `json:"model,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

// ImageResponse carries a generated image as a data URL.
type ImageResponse struct {
	DataURL string `json:"data_url"`
	Model   string `json:"model"`
}

// ImageGenerator is implemented by providers that can generate images.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (ImageResponse, error)
}
