package hebrew

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// UnicodeNames returns the Unicode character name of every rune in text,
// "?" when the rune has no name. Used to debug diacritic ordering.
func UnicodeNames(text string) []string {
	names := make([]string, 0, len(text))
	for _, r := range text {
		name := runenames.Name(r)
		if name == "" {
			name = "?"
		}
		names = append(names, name)
	}
	return names
}

// DescribeRunes formats each rune as "U+XXXX NAME".
func DescribeRunes(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		name := runenames.Name(r)
		if name == "" {
			name = "?"
		}
		out = append(out, fmt.Sprintf("U+%04X %s", r, name))
	}
	return out
}
