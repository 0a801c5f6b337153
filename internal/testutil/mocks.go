package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockTranscriber mocks a fallback transcriber
type MockTranscriber struct {
	Results      map[string]string
	Errors       map[string]error
	AvailableErr error

	mu    sync.Mutex
	Calls []string
}

// Transcribe mocks transcribing text
func (m *MockTranscriber) Transcribe(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if ipa, ok := m.Results[text]; ok {
		return ipa, nil
	}

	return "", fmt.Errorf("no mock transcription for %s", text)
}

// Name returns the mock name
func (m *MockTranscriber) Name() string {
	return "mock"
}

// IsAvailable returns the configured availability error
func (m *MockTranscriber) IsAvailable() error {
	return m.AvailableErr
}

// CallCount returns the number of Transcribe calls
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
