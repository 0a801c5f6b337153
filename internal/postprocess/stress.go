package postprocess

import (
	"strings"
	"unicode/utf8"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
	"github.com/tsachovadia/RapTrainer/internal/syllables"
)

var stressRune, _ = utf8.DecodeRuneInString(hebrew.StressPhoneme)

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", r)
}

// MoveStressToVowel fixes words whose stress mark does not precede a vowel,
// which happens when the stressed letter carries no vowel of its own. The
// mark moves in front of the next vowel of the same word, or in front of the
// last vowel when none follows. Words without a vowel are left as is.
func MoveStressToVowel(phonemes string) string {
	words := strings.Split(phonemes, " ")
	for i, w := range words {
		if strings.Contains(w, hebrew.StressPhoneme) {
			words[i] = moveStress(w)
		}
	}
	return strings.Join(words, " ")
}

func moveStress(word string) string {
	runes := []rune(word)
	first := -1
	for i, r := range runes {
		if r != stressRune {
			continue
		}
		if i+1 < len(runes) && isVowel(runes[i+1]) {
			return word
		}
		if first < 0 {
			first = i
		}
	}
	if first < 0 {
		return word
	}

	out := make([]rune, 0, len(runes))
	insertAt, lastVowel := -1, -1
	for i, r := range runes {
		if r == stressRune {
			continue
		}
		if isVowel(r) {
			if i > first && insertAt < 0 {
				insertAt = len(out)
			}
			lastVowel = len(out)
		}
		out = append(out, r)
	}
	if insertAt < 0 {
		insertAt = lastVowel
	}
	if insertAt < 0 {
		return word
	}
	return string(out[:insertAt]) + hebrew.StressPhoneme + string(out[insertAt:])
}

// MoveStressToSyllableStart joins the phonemes of one word and puts a single
// stress mark at the start of the syllable holding the phoneme that followed
// the first stress mark. Words without a stress mark or without a vowel are
// joined unchanged.
func MoveStressToSyllableStart(phonemes []string) string {
	clean := make([]string, 0, len(phonemes))
	stressAt := -1
	for _, p := range phonemes {
		if !strings.Contains(p, hebrew.StressPhoneme) {
			clean = append(clean, p)
			continue
		}
		if stressAt < 0 {
			stressAt = len(clean)
		}
		if rest := strings.ReplaceAll(p, hebrew.StressPhoneme, ""); rest != "" {
			clean = append(clean, rest)
		}
	}
	joined := strings.Join(clean, "")
	if stressAt < 0 || !strings.ContainsAny(joined, "aeiou") {
		return strings.Join(phonemes, "")
	}

	var b strings.Builder
	start := 0
	groups := syllables.PhonemeGroups(clean)
	for i, g := range groups {
		end := start + len(g)
		if stressAt >= start && (stressAt < end || i == len(groups)-1) {
			b.WriteString(hebrew.StressPhoneme)
		}
		b.WriteString(strings.Join(g, ""))
		start = end
	}
	return b.String()
}
