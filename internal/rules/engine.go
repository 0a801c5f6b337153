package rules

import (
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

// context is the window a rule sees. prev and next are nil at word edges.
type context struct {
	prev *hebrew.Letter
	cur  hebrew.Letter
	next *hebrew.Letter
}

// step collects what the rules decided for the current letter.
type step struct {
	phonemes       []string
	skipConsonant  bool
	skipDiacritics bool
	// advance counts the extra letters consumed after the current one.
	advance int
}

func (s *step) emit(p ...string) {
	s.phonemes = append(s.phonemes, p...)
}

// rule applies to a context and reports whether it matched. Within a tier
// the first matching rule wins.
type rule struct {
	name  string
	apply func(c context, s *step) bool
}

// Phonemize converts the letters of one word into phonemes.
func Phonemize(letters []hebrew.Letter, placement Placement) []string {
	var phonemes []string
	for i := 0; i < len(letters); {
		c := context{cur: letters[i]}
		if i > 0 {
			c.prev = &letters[i-1]
		}
		if i < len(letters)-1 {
			c.next = &letters[i+1]
		}
		out, advance := letterToPhonemes(c, placement)
		phonemes = append(phonemes, out...)
		i += advance + 1
	}
	for _, p := range phonemes {
		if p != hebrew.StressPhoneme {
			return phonemes
		}
	}
	// nothing pronounced, a lone stress mark has no syllable to sit on
	return nil
}

// PhonemizeString is Phonemize over a normalized word, joined.
func PhonemizeString(word string, placement Placement) string {
	return strings.Join(Phonemize(hebrew.Segment(word), placement), "")
}

func letterToPhonemes(c context, placement Placement) ([]string, int) {
	var s step

	applyTier(letterRules, c, &s)
	if !c.cur.Has(hebrew.NikudHaser) {
		applyTier(markRules, c, &s)
	}

	if !s.skipConsonant {
		s.emit(hebrew.LetterPhonemes[string(c.cur.Char)])
	}

	if c.cur.Has(hebrew.Kamatz) && c.next != nil && c.next.Has(hebrew.HatafKamatz) {
		s.emit("o")
		s.skipDiacritics = true
	}

	switch {
	case !s.skipDiacritics:
		for _, d := range c.cur.Diacritics {
			s.emit(hebrew.NikudPhonemes[d])
		}
	case c.cur.Has(hebrew.Hatama):
		s.emit(hebrew.StressPhoneme)
	}

	sorted := SortStress(s.phonemes, placement)
	out := make([]string, 0, len(sorted))
	for _, p := range sorted {
		if p != "" && hebrew.IsPhonemeString(p) {
			out = append(out, p)
		}
	}
	return out, s.advance
}

func applyTier(tier []rule, c context, s *step) {
	for _, r := range tier {
		if r.apply(c, s) {
			return
		}
	}
}
