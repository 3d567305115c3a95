package ai

import "context"

// MockProvider is a test double for AI providers.
type MockProvider struct {
	Response    string
	Chunks      []string // if set, StreamComplete emits these in order
	Err         error
	ImageURL    string
	LastRequest *CompletionRequest // captures the last request for inspection
}

// NewMockProvider creates a MockProvider that returns the given response.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{Response: response}
}

func (m *MockProvider) Complete(_ context.Context, req CompletionRequest) (CompletionResponse, error) {
	m.LastRequest = &req
	if m.Err != nil {
		return CompletionResponse{}, m.Err
	}
	return CompletionResponse{
		Content:      m.Response,
		Model:        "mock",
		InputTokens:  10,
		OutputTokens: len(m.Response),
	}, nil
}

func (m *MockProvider) StreamComplete(_ context.Context, req CompletionRequest) (<-chan StreamChunk, error) {
	m.LastRequest = &req
	if m.Err != nil {
		return nil, m.Err
	}
	chunks := m.Chunks
	if chunks == nil {
		chunks = []string{m.Response}
	}
	ch := make(chan StreamChunk, len(chunks)+1)
	go func() {
		defer close(ch)
		for _, c := range chunks {
			ch <- StreamChunk{Content: c}
		}
		ch <- StreamChunk{Done: true}
	}()
	return ch, nil
}

func (m *MockProvider) GenerateImage(_ context.Context, _ ImageRequest) (ImageResponse, error) {
	if m.Err != nil {
		return ImageResponse{}, m.Err
	}
	return ImageResponse{DataURL: m.ImageURL, Model: "mock"}, nil
}

func (m *MockProvider) Models() []ModelInfo {
	return []ModelInfo{
		{ID: "mock", Name: "Mock Model", MaxTokens: 4096, Description: "Test mock"},
	}
}

func (m *MockProvider) HealthCheck(_ context.Context) error {
	return m.Err
}
