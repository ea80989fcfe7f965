package gemini

import (
	"context"
	"fmt"

	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/internal/modules/ai"
	"github.com/reusedev/plant-hub/internal/modules/http_client"
	"google.golang.org/genai"
)

type Model struct {
	client *genai.Client
	model  string
}

type Option func(cc *genai.ClientConfig)

// WithBaseURL points the client at another endpoint, e.g. a proxy.
func WithBaseURL(baseURL string) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPOptions.BaseURL = baseURL
	}
}

func NewModel(ctx context.Context, cfg config.Gemini, opts ...Option) (*Model, error) {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("environment variable %s is not set", cfg.APIKeyEnv)
	}
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: http_client.NewWithTimeout(cfg.RequestTimeout()).HttpClient,
	}
	if cfg.BaseURL != "" {
		WithBaseURL(cfg.BaseURL)(cc)
	}
	for _, opt := range opts {
		opt(cc)
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Model{client: client, model: cfg.Model}, nil
}

func (m *Model) Name() string {
	return m.model
}

func (m *Model) Generate(ctx context.Context, prompt string, image *ai.Image) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if image != nil {
		parts = append(parts, genai.NewPartFromBytes(image.Data, image.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := m.client.Models.GenerateContent(ctx, m.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}
