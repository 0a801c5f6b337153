package phonetic

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiTranscriber asks a Gemini model for an IPA transcription
type GeminiTranscriber struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiTranscriber creates a new Gemini backed transcriber
func NewGeminiTranscriber(config *Config) (Transcriber, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required: %w", ErrNotConfigured)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.GeminiBaseURL
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiTranscriber{
		client:  client,
		model:   model,
		timeout: config.Timeout,
	}, nil
}

// Transcribe returns the IPA transcription of text
func (t *GeminiTranscriber) Transcribe(ctx context.Context, text string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(userPrompt(text)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.1),
			MaxOutputTokens:   100,
		})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return cleanTranscription(resp.Text())
}

// Name returns the transcriber name
func (t *GeminiTranscriber) Name() string {
	return "gemini (" + t.model + ")"
}

// IsAvailable reports whether the transcriber has a client
func (t *GeminiTranscriber) IsAvailable() error {
	if t.client == nil {
		return ErrNotConfigured
	}
	return nil
}
