package rules

import (
	"fmt"
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

// Placement selects where the stress mark goes inside a stressed syllable.
type Placement string

const (
	// PlacementSyllable puts the stress mark at the start of the syllable.
	PlacementSyllable Placement = "syllable"
	// PlacementVowel puts the stress mark right before the vowel, which is
	// what most speech synthesis front ends expect.
	PlacementVowel Placement = "vowel"
)

// ParsePlacement validates a placement name.
func ParsePlacement(s string) (Placement, error) {
	switch p := Placement(strings.ToLower(strings.TrimSpace(s))); p {
	case PlacementSyllable, PlacementVowel:
		return p, nil
	default:
		return "", fmt.Errorf("unknown stress placement %q (use syllable or vowel)", s)
	}
}

const vowels = "aeiou"

// SortStress repositions the stress mark of the phonemes emitted for one
// letter. Runs without a stress mark or without a vowel are returned as is.
func SortStress(phonemes []string, placement Placement) []string {
	joined := strings.Join(phonemes, "")
	if !strings.Contains(joined, hebrew.StressPhoneme) || !strings.ContainsAny(joined, vowels) {
		return phonemes
	}

	out := make([]string, 0, len(phonemes)+1)
	for _, p := range phonemes {
		if p != hebrew.StressPhoneme {
			out = append(out, p)
		}
	}

	if placement == PlacementSyllable {
		return append([]string{hebrew.StressPhoneme}, out...)
	}

	for i, p := range out {
		if j := strings.IndexAny(p, vowels); j >= 0 {
			out[i] = p[:j] + hebrew.StressPhoneme + p[j:]
			return out
		}
	}
	return out
}
