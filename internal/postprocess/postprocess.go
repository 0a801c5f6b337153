// Package postprocess cleans the phoneme string produced by the rule engine:
// trailing symbol trimming, stress repositioning, schema remapping and the
// final symbol filter.
package postprocess

import (
	"fmt"
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

// Schema selects the output symbol variant.
type Schema string

const (
	SchemaPlain  Schema = "plain"
	SchemaModern Schema = "modern"
)

// ParseSchema validates a schema name.
func ParseSchema(s string) (Schema, error) {
	switch sc := Schema(strings.ToLower(strings.TrimSpace(s))); sc {
	case SchemaPlain, SchemaModern:
		return sc, nil
	default:
		return "", fmt.Errorf("unknown schema %q (use plain or modern)", s)
	}
}

// ApplySchema remaps symbols for the modern schema. Plain text is returned
// unchanged.
func ApplySchema(phonemes string, schema Schema) string {
	if schema != SchemaModern {
		return phonemes
	}
	for _, m := range hebrew.ModernSchema {
		phonemes = strings.ReplaceAll(phonemes, m.From, m.To)
	}
	return phonemes
}

// Normalize trims symbols that are not audible at the end of each space
// separated word: a glottal stop, a final h, a stressed final h, and the
// glide in a final "ij".
func Normalize(phonemes string) string {
	words := strings.Split(phonemes, " ")
	for i, w := range words {
		w = strings.TrimSuffix(w, "ʔ")
		w = strings.TrimSuffix(w, "h")
		w = strings.TrimSuffix(w, hebrew.StressPhoneme+"h")
		if strings.HasSuffix(w, "ij") {
			w = strings.TrimSuffix(w, "j")
		}
		words[i] = w
	}
	return strings.Join(words, " ")
}

// Clean keeps only phoneme symbols known to the fixed set or to reg, spaces
// and punctuation. Hyphens become spaces.
func Clean(text string, reg *hebrew.Registry) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '-':
			b.WriteRune(' ')
		case r == ' ' || hebrew.IsPunctuation(r) || reg.Valid(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripPunctuation removes punctuation other than spaces.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r != ' ' && hebrew.IsPunctuation(r) {
			return -1
		}
		return r
	}, text)
}

// StripStress removes every stress mark.
func StripStress(text string) string {
	return strings.ReplaceAll(text, hebrew.StressPhoneme, "")
}
