package phonemizer

import (
	"github.com/tsachovadia/RapTrainer/internal/hebrew"
	"github.com/tsachovadia/RapTrainer/internal/postprocess"
	"github.com/tsachovadia/RapTrainer/internal/rules"
)

// Fallback transcribes a run of Latin letters. It returns the phonemes to
// insert, or an empty string to drop the run.
type Fallback func(word string) string

// Options control a single phonemization call.
type Options struct {
	// PreservePunctuation keeps .,!? in the output.
	PreservePunctuation bool
	// PreserveStress keeps the stress mark in the output.
	PreserveStress bool
	// UseExpander expands numbers, dates, times and dictionary entries.
	UseExpander bool
	// UsePostNormalize trims inaudible trailing symbols and applies the
	// final symbol filter. Intended for speech synthesis.
	UsePostNormalize bool
	// PredictStress stresses the last syllable of words without a hatama.
	PredictStress bool
	// PredictShvaNah marks a predictable vocal shva on the first letter.
	PredictShvaNah bool

	StressPlacement rules.Placement
	Schema          postprocess.Schema

	// Fallback handles runs of [a-zA-Z] letters. Nil leaves them as is.
	Fallback Fallback
	// Registry collects symbols contributed by the fallback and by inline
	// [text](/phonemes/) overrides. A fresh registry is used when nil.
	Registry *hebrew.Registry
}

// DefaultOptions returns the defaults: everything enabled, stress before
// the vowel and the modern schema.
func DefaultOptions() Options {
	return Options{
		PreservePunctuation: true,
		PreserveStress:      true,
		UseExpander:         true,
		UsePostNormalize:    true,
		PredictStress:       true,
		PredictShvaNah:      true,
		StressPlacement:     rules.PlacementVowel,
		Schema:              postprocess.SchemaModern,
	}
}
