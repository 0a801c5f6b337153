package hebrew

import "unicode"

// Segment splits a word into letters. Each letter is one letter-category
// rune followed by its combining marks, geresh apostrophes and prefix
// markers. Runes that neither start nor continue a letter are skipped.
func Segment(word string) []Letter {
	runes := []rune(word)
	letters := make([]Letter, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if !unicode.IsLetter(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && isAttached(runes[j]) {
			j++
		}
		letters = append(letters, NewLetter(runes[i], string(runes[i+1:j])))
		i = j - 1
	}
	return letters
}

func isAttached(r rune) bool {
	return r == EnGeresh || r == Prefix || unicode.Is(unicode.M, r)
}
