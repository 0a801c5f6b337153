package hebrew

import (
	"sort"
	"strings"
	"unicode"
)

// Letter is a grapheme unit: one base character and the diacritics attached
// to it. Diacritics are kept in canonical order, combining marks sorted by
// code point followed by the geresh and prefix markers.
type Letter struct {
	Char       rune
	Diacritics string
}

// NewLetter builds a Letter and canonicalizes its diacritics.
func NewLetter(char rune, diacritics string) Letter {
	return Letter{Char: char, Diacritics: canonicalDiacritics(diacritics)}
}

// Diac returns the diacritics without the phonetic annotations (stress,
// prefix marker and vocal shva).
func (l Letter) Diac() string {
	var b strings.Builder
	for _, r := range l.Diacritics {
		if !phoneticDiacritics[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Has reports whether the letter carries d among all of its diacritics.
func (l Letter) Has(d rune) bool {
	return strings.ContainsRune(l.Diacritics, d)
}

// HasDiac reports whether d is among the non phonetic diacritics.
func (l Letter) HasDiac(d rune) bool {
	return !phoneticDiacritics[d] && l.Has(d)
}

// IsBare reports whether the letter has no diacritics at all.
func (l Letter) IsBare() bool {
	return l.Diacritics == ""
}

// AddDiacritic returns a copy of the letter with d added. Adding a diacritic
// that is already present is a no-op.
func (l Letter) AddDiacritic(d rune) Letter {
	if l.Has(d) {
		return l
	}
	return NewLetter(l.Char, l.Diacritics+string(d))
}

// RemoveDiacritic returns a copy of the letter without d.
func (l Letter) RemoveDiacritic(d rune) Letter {
	return Letter{Char: l.Char, Diacritics: strings.ReplaceAll(l.Diacritics, string(d), "")}
}

// Equal compares base characters and the full diacritic sets.
func (l Letter) Equal(o Letter) bool {
	return l.Char == o.Char && l.Diacritics == o.Diacritics
}

func (l Letter) String() string {
	return string(l.Char) + l.Diacritics
}

// Letters joins a letter sequence back into text.
func Letters(letters []Letter) string {
	var b strings.Builder
	for _, l := range letters {
		b.WriteString(l.String())
	}
	return b.String()
}

// CloneLetters copies a letter sequence so it can be annotated without
// touching the caller's slice.
func CloneLetters(letters []Letter) []Letter {
	out := make([]Letter, len(letters))
	copy(out, letters)
	return out
}

func diacriticRank(r rune) int {
	switch {
	case unicode.Is(unicode.M, r):
		return 0
	case r == Prefix:
		return 2
	default:
		return 1
	}
}

func canonicalDiacritics(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	sort.SliceStable(runes, func(i, j int) bool {
		ri, rj := diacriticRank(runes[i]), diacriticRank(runes[j])
		if ri != rj {
			return ri < rj
		}
		if ri == 0 {
			return runes[i] < runes[j]
		}
		return false
	})
	return string(runes)
}
