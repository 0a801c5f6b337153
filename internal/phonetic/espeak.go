package phonetic

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ESpeakTranscriber runs the local espeak-ng binary in IPA mode
type ESpeakTranscriber struct {
	binary string
	voice  string
}

// NewESpeakTranscriber creates a transcriber backed by espeak-ng. It fails
// when the binary is not installed.
func NewESpeakTranscriber(config *Config) (Transcriber, error) {
	binary := config.ESpeakBinary
	if binary == "" {
		binary = "espeak-ng"
	}
	voice := config.ESpeakVoice
	if voice == "" {
		voice = "en-us"
	}

	t := &ESpeakTranscriber{binary: binary, voice: voice}
	if err := t.IsAvailable(); err != nil {
		return nil, err
	}
	return t, nil
}

// Transcribe returns the espeak-ng IPA output for text
func (t *ESpeakTranscriber) Transcribe(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text cannot be empty")
	}

	cmd := exec.CommandContext(ctx, t.binary, "-q", "--ipa", "-v", t.voice, text)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("espeak-ng failed: %w", err)
	}

	// espeak-ng separates clauses with newlines
	return cleanTranscription(strings.Join(strings.Fields(string(output)), " "))
}

// Name returns the transcriber name
func (t *ESpeakTranscriber) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (t *ESpeakTranscriber) IsAvailable() error {
	if _, err := exec.LookPath(t.binary); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", ErrNotConfigured)
	}
	return nil
}
