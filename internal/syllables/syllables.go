// Package syllables groups segmented Hebrew letters, or emitted phonemes,
// into syllables. The grouping is a heuristic used to place default stress.
package syllables

import (
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

// Syllable is a contiguous run of letters.
type Syllable []hebrew.Letter

func (s Syllable) String() string {
	return hebrew.Letters(s)
}

// HasVowelDiacritics reports whether a letter carries a vowel for
// syllabification purposes. Shva, dagesh and hatama are not vowels, a shuruk
// (vav with dagesh) and the vocal shva meteg are.
func HasVowelDiacritics(l hebrew.Letter) bool {
	if l.Char == 'ו' && l.Diacritics == string(hebrew.Dagesh) {
		return true
	}
	for _, r := range l.Diacritics {
		if isVowelDiacritic(r) {
			return true
		}
	}
	return false
}

func isVowelDiacritic(r rune) bool {
	return (r >= hebrew.HatafSegol && r <= hebrew.Kubuts) || r == hebrew.KamatzKatan || r == hebrew.VocalShva
}

// Split groups letters into syllables. A new syllable opens at every vowel
// bearing letter once the current one already has a nucleus. A word initial
// shva counts as a vowel. Two look-ahead cases handle vav: when the letters
// two and three positions ahead are both vav, the next letter closes the
// current syllable and the vav pair forms the next one; when only the letter
// two ahead is a vav and the following letter carries diacritics, the
// current syllable closes right away.
//
// Concatenating the returned syllables yields the input letters.
func Split(letters []hebrew.Letter) []Syllable {
	var (
		out        []Syllable
		cur        Syllable
		vowelState bool
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}

	i := 0
	for i < len(letters) {
		letter := letters[i]
		hasVowel := HasVowelDiacritics(letter) || (i == 0 && letter.Has(hebrew.Shva))
		vav1 := i+2 < len(letters) && letters[i+2].Char == 'ו'
		vav2 := i+3 < len(letters) && letters[i+3].Char == 'ו'

		if hasVowel {
			if vowelState {
				flush()
			}
			vowelState = true
		}
		cur = append(cur, letter)
		i++

		switch {
		case vav1 && vav2:
			cur = append(cur, letters[i])
			flush()
			cur = Syllable{letters[i+1], letters[i+2]}
			i += 3
			vowelState = true
		case vav1 && letters[i+1].Diac() != "":
			flush()
			vowelState = false
		}
	}
	flush()
	return out
}

// SplitWord segments word and splits it into syllables.
func SplitWord(word string) []Syllable {
	return Split(hebrew.Segment(word))
}

// Join concatenates syllables back into one letter sequence.
func Join(syllables []Syllable) []hebrew.Letter {
	var letters []hebrew.Letter
	for _, s := range syllables {
		letters = append(letters, s...)
	}
	return letters
}

// AddStress marks the first letter of the syllable at index with a hatama.
// Negative indexes count from the end, out of range indexes are clamped. The
// input is not modified.
func AddStress(letters []hebrew.Letter, index int) []hebrew.Letter {
	syls := Split(letters)
	if len(syls) == 0 {
		return hebrew.CloneLetters(letters)
	}
	if index < 0 {
		index += len(syls)
	}
	index = max(0, min(index, len(syls)-1))

	out := make([]hebrew.Letter, 0, len(letters))
	for i, s := range syls {
		for j, l := range s {
			if i == index && j == 0 {
				l = l.AddDiacritic(hebrew.Hatama)
			}
			out = append(out, l)
		}
	}
	return out
}

// AddStressToWord is AddStress over a word string.
func AddStressToWord(word string, index int) string {
	return hebrew.Letters(AddStress(hebrew.Segment(word), index))
}

const phonemeVowels = "aeiou"

func hasVowel(s string) bool {
	return strings.ContainsAny(s, phonemeVowels)
}

// PhonemeGroups groups a phoneme sequence into syllables. A syllable closes
// after its vowel when a consonant and another vowel follow, or when the
// next phoneme carries a vowel itself.
func PhonemeGroups(phonemes []string) [][]string {
	var (
		groups [][]string
		cur    []string
	)
	for i, p := range phonemes {
		cur = append(cur, p)
		if !hasVowel(strings.Join(cur, "")) {
			continue
		}
		if i+2 < len(phonemes) && !hasVowel(phonemes[i+1]) && hasVowel(phonemes[i+2]) {
			groups = append(groups, cur)
			cur = nil
		} else if i+1 >= len(phonemes) || hasVowel(phonemes[i+1]) {
			groups = append(groups, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// Phonemes is PhonemeGroups with each syllable joined. A stress mark left at
// the end of a syllable is moved to the start of the next one.
func Phonemes(phonemes []string) []string {
	groups := PhonemeGroups(phonemes)
	if len(groups) == 0 {
		return nil
	}
	syls := make([]string, len(groups))
	for i, g := range groups {
		syls[i] = strings.Join(g, "")
	}
	for i := 0; i < len(syls)-1; i++ {
		if strings.HasSuffix(syls[i], hebrew.StressPhoneme) {
			syls[i] = strings.TrimSuffix(syls[i], hebrew.StressPhoneme)
			syls[i+1] = hebrew.StressPhoneme + syls[i+1]
		}
	}
	return syls
}
