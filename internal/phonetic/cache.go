package phonetic

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingTranscriber remembers successful transcriptions so repeated foreign
// words in a batch cost a single backend call.
type CachingTranscriber struct {
	next  Transcriber
	cache *lru.Cache[string, string]
}

// NewCachingTranscriber wraps next with a bounded cache of size entries
func NewCachingTranscriber(next Transcriber, size int) *CachingTranscriber {
	if size <= 0 {
		size = 1
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &CachingTranscriber{next: next, cache: cache}
}

// Transcribe returns a cached transcription or asks the wrapped transcriber
func (t *CachingTranscriber) Transcribe(ctx context.Context, text string) (string, error) {
	if ipa, ok := t.cache.Get(text); ok {
		return ipa, nil
	}
	ipa, err := t.next.Transcribe(ctx, text)
	if err != nil {
		return "", err
	}
	t.cache.Add(text, ipa)
	return ipa, nil
}

// Name returns the wrapped transcriber name
func (t *CachingTranscriber) Name() string {
	return t.next.Name()
}

// IsAvailable checks the wrapped transcriber
func (t *CachingTranscriber) IsAvailable() error {
	return t.next.IsAvailable()
}

// Len returns the number of cached transcriptions
func (t *CachingTranscriber) Len() int {
	return t.cache.Len()
}

// All returns a copy of the cached transcriptions
func (t *CachingTranscriber) All() map[string]string {
	result := make(map[string]string, t.cache.Len())
	for _, k := range t.cache.Keys() {
		if v, ok := t.cache.Peek(k); ok {
			result[k] = v
		}
	}
	return result
}
