// Package predict annotates segmented words with a predicted vocal shva and
// a default stress position before the rule engine runs.
package predict

import (
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
	"github.com/tsachovadia/RapTrainer/internal/syllables"
)

const (
	shvaNaLetters   = "למנרי"
	gutturalLetters  = "אעה"
	prefixLetters   = "וכלב"
)

// MarkVocalShva adds the vocal shva marker to the first letter of a word
// whose first letter carries a shva and either starts with one of למנרי, is
// followed by a guttural, or is a prefix letter marked with "|". Mid word
// shva is never predicted, and a למנרי initial with a full vowel is left
// alone. The input is not modified.
func MarkVocalShva(letters []hebrew.Letter) []hebrew.Letter {
	out := hebrew.CloneLetters(letters)
	if len(out) == 0 || !out[0].Has(hebrew.Shva) {
		return out
	}
	first := out[0]
	switch {
	case strings.ContainsRune(shvaNaLetters, first.Char):
	case len(out) > 1 && strings.ContainsRune(gutturalLetters, out[1].Char):
	case strings.ContainsRune(prefixLetters, first.Char) && first.Has(hebrew.Prefix):
	default:
		return out
	}
	out[0] = first.AddDiacritic(hebrew.VocalShva)
	return out
}

// HasStress reports whether any letter carries a hatama.
func HasStress(letters []hebrew.Letter) bool {
	for _, l := range letters {
		if l.Has(hebrew.Hatama) {
			return true
		}
	}
	return false
}

// AddMilraStress stresses the last syllable, the dominant pattern in
// Hebrew.
func AddMilraStress(letters []hebrew.Letter) []hebrew.Letter {
	return syllables.AddStress(letters, -1)
}

// RelocateStress moves a hatama that sits on a letter marked as not
// pronounced to the following letter.
func RelocateStress(letters []hebrew.Letter) []hebrew.Letter {
	out := hebrew.CloneLetters(letters)
	for i := 0; i < len(out)-1; i++ {
		if out[i].Has(hebrew.Hatama) && out[i].Has(hebrew.NikudHaser) {
			out[i] = out[i].RemoveDiacritic(hebrew.Hatama)
			out[i+1] = out[i+1].AddDiacritic(hebrew.Hatama)
		}
	}
	return out
}
