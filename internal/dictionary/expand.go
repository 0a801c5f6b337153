package dictionary

import (
	"strings"
	"unicode"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
	"golang.org/x/text/unicode/norm"
)

// Expand replaces every whitespace separated run of text found in the
// dictionary. Runs that are not keys as a whole have their Hebrew spans
// looked up individually: as written, without nikud, then normalized.
// Numeric runs are left for the number expander. Whitespace is preserved.
func (d *Dictionary) Expand(text string) string {
	if d.Len() == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) {
			j++
		}
		b.WriteString(d.expandRun(string(runes[i:j])))
		i = j
	}
	return b.String()
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return s != ""
}

func (d *Dictionary) expandRun(run string) string {
	if isNumeric(run) {
		return run
	}
	if v, ok := d.Lookup(run); ok {
		return v
	}

	var b strings.Builder
	runes := []rune(run)
	for i := 0; i < len(runes); {
		if !hebrew.IsHebrew(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && hebrew.IsHebrew(runes[j]) {
			j++
		}
		b.WriteString(d.expandHebrew(string(runes[i:j])))
		i = j
	}
	return b.String()
}

func (d *Dictionary) expandHebrew(span string) string {
	span = norm.NFD.String(span)
	if v, ok := d.Lookup(span); ok {
		return v
	}
	if v, ok := d.Lookup(hebrew.RemoveNikud(span, "")); ok {
		return v
	}
	if v, ok := d.Lookup(hebrew.Normalize(span)); ok {
		return v
	}
	return span
}
