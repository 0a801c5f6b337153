package phonetic

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a phonetics expert. Transcribe the given word or phrase into " +
	"the International Phonetic Alphabet as it is pronounced by a native speaker. " +
	"Mark primary stress with ˈ before the stressed vowel. " +
	"Respond with only the IPA symbols, without slashes, brackets or explanations."

func userPrompt(text string) string {
	return fmt.Sprintf("Transcribe '%s' into IPA.", text)
}

// OpenAITranscriber asks an OpenAI chat model for an IPA transcription
type OpenAITranscriber struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAITranscriber creates a new OpenAI backed transcriber
func NewOpenAITranscriber(config *Config) (Transcriber, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required: %w", ErrNotConfigured)
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAITranscriber{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: config.Timeout,
	}, nil
}

// Transcribe returns the IPA transcription of text
func (t *OpenAITranscriber) Transcribe(ctx context.Context, text string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(text),
			},
		},
		Temperature: 0.1,
		MaxTokens:   100,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI: %w", ErrEmptyTranscription)
	}

	return cleanTranscription(resp.Choices[0].Message.Content)
}

// Name returns the transcriber name
func (t *OpenAITranscriber) Name() string {
	return "openai (" + t.model + ")"
}

// IsAvailable reports whether the transcriber has a client
func (t *OpenAITranscriber) IsAvailable() error {
	if t.client == nil {
		return ErrNotConfigured
	}
	return nil
}
