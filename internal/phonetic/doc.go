// Package phonetic transcribes runs of non-Hebrew text into IPA for the
// phonemizer fallback hook. Transcribers wrap espeak-ng, OpenAI chat models
// or Gemini, and can be chained, cached and guarded by a circuit breaker.
package phonetic
