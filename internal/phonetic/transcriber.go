package phonetic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/tsachovadia/RapTrainer/internal/logging"
)

var (
	// ErrNotConfigured is returned when a transcriber lacks an API key or
	// binary.
	ErrNotConfigured = errors.New("transcriber not configured")
	// ErrEmptyTranscription is returned when a backend answers with no
	// phonemes.
	ErrEmptyTranscription = errors.New("empty transcription")
)

// Transcriber converts a word into IPA phonemes
type Transcriber interface {
	// Transcribe returns the IPA transcription of text
	Transcribe(ctx context.Context, text string) (string, error)

	// Name returns the transcriber name
	Name() string

	// IsAvailable checks if the transcriber is properly configured and available
	IsAvailable() error
}

// Provider names accepted by NewTranscriber
const (
	ProviderNone   = "none"
	ProviderESpeak = "espeak"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderAuto   = "auto"
)

// Config holds configuration for all transcribers
type Config struct {
	Provider  string        // none, espeak, openai, gemini or auto
	Timeout   time.Duration // Per request timeout for remote backends
	CacheSize int           // Cached transcriptions, 0 disables the cache

	// Consecutive failures before a remote backend is skipped, and for how long
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	// espeak-ng settings
	ESpeakBinary string
	ESpeakVoice  string // e.g. "en-us", "en-gb"

	// OpenAI settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini settings
	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderNone,
		Timeout:         30 * time.Second,
		CacheSize:       1000,
		BreakerFailures: 3,
		BreakerTimeout:  time.Minute,
		ESpeakBinary:    "espeak-ng",
		ESpeakVoice:     "en-us",
		OpenAIModel:     openai.GPT4oMini,
		GeminiModel:     "gemini-2.0-flash",
	}
}

// NewTranscriber creates the transcriber selected by config.Provider.
// ProviderNone yields a nil transcriber and no error.
func NewTranscriber(config *Config) (Transcriber, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var t Transcriber
	var err error
	switch config.Provider {
	case "", ProviderNone:
		return nil, nil
	case ProviderESpeak:
		t, err = NewESpeakTranscriber(config)
	case ProviderOpenAI:
		t, err = newRemote(config, NewOpenAITranscriber)
	case ProviderGemini:
		t, err = newRemote(config, NewGeminiTranscriber)
	case ProviderAuto:
		t, err = newAuto(config)
	default:
		return nil, fmt.Errorf("unknown transcription provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.CacheSize > 0 {
		t = NewCachingTranscriber(t, config.CacheSize)
	}
	return t, nil
}

func newRemote(config *Config, create func(*Config) (Transcriber, error)) (Transcriber, error) {
	t, err := create(config)
	if err != nil {
		return nil, err
	}
	return NewBreakerTranscriber(t, config.BreakerFailures, config.BreakerTimeout), nil
}

// newAuto chains every configured backend: OpenAI, then Gemini, then the
// local espeak-ng.
func newAuto(config *Config) (Transcriber, error) {
	var chain []Transcriber
	if t, err := newRemote(config, NewOpenAITranscriber); err == nil {
		chain = append(chain, t)
	}
	if t, err := newRemote(config, NewGeminiTranscriber); err == nil {
		chain = append(chain, t)
	}
	if t, err := NewESpeakTranscriber(config); err == nil {
		chain = append(chain, t)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("no transcriber available for auto mode: %w", ErrNotConfigured)
	}

	t := chain[len(chain)-1]
	for i := len(chain) - 2; i >= 0; i-- {
		t = NewTranscriberWithFallback(chain[i], t)
	}
	return t, nil
}

// TranscriberWithFallback wraps a primary transcriber with a fallback option
type TranscriberWithFallback struct {
	primary  Transcriber
	fallback Transcriber
}

// NewTranscriberWithFallback creates a transcriber that falls back to secondary if primary fails
func NewTranscriberWithFallback(primary, fallback Transcriber) Transcriber {
	return &TranscriberWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Transcribe tries the primary transcriber first, falls back to secondary on error
func (t *TranscriberWithFallback) Transcribe(ctx context.Context, text string) (string, error) {
	ipa, err := t.primary.Transcribe(ctx, text)
	if err == nil {
		return ipa, nil
	}
	logging.Logger().Info("primary transcriber failed, falling back",
		"primary", t.primary.Name(), "fallback", t.fallback.Name(), "error", err)
	return t.fallback.Transcribe(ctx, text)
}

// Name returns the transcriber name
func (t *TranscriberWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", t.primary.Name(), t.fallback.Name())
}

// IsAvailable checks if at least one transcriber is available
func (t *TranscriberWithFallback) IsAvailable() error {
	primaryErr := t.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := t.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both transcribers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

// cleanTranscription reduces a backend answer to a bare phoneme string: the
// first non-empty line without IPA delimiters.
func cleanTranscription(raw string) (string, error) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Map(func(r rune) rune {
			switch r {
			case '/', '[', ']', '`', '"':
				return -1
			}
			return r
		}, line)
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			return line, nil
		}
	}
	return "", ErrEmptyTranscription
}
