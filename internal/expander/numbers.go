package expander

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	onesNames = []string{"", "אחת", "שתיים", "שלוש", "ארבע", "חמש", "שש", "שבע", "שמונה", "תשע"}
	teenNames = []string{"עשר", "אחת עשרה", "שתים עשרה", "שלוש עשרה", "ארבע עשרה", "חמש עשרה", "שש עשרה", "שבע עשרה", "שמונה עשרה", "תשע עשרה"}
	tensNames = []string{"", "", "עשרים", "שלושים", "ארבעים", "חמישים", "שישים", "שבעים", "שמונים", "תשעים"}

	// Construct forms counting thousands, 3000 to 10000.
	thousandsNames = []string{"", "", "", "שלושת", "ארבעת", "חמשת", "ששת", "שבעת", "שמונת", "תשעת", "עשרת"}
)

const (
	wordZero     = "אפס"
	wordMinus    = "מינוס"
	wordPoint    = "נקודה"
	wordAnd      = "ו"
	wordHundred  = "מאה"
	wordHundreds = "מאות"
	wordThousand = "אלף"
	wordMillion  = "מיליון"
	wordBillion  = "מיליארד"
	wordTwoOf    = "שני"

	maxCardinal = 999_999_999_999
)

// Cardinal spells n as a Hebrew cardinal number in the feminine counting
// form, without diacritics. The conjunction ו is attached to the last
// element, as in "אלפיים עשרים וארבע".
func Cardinal(n int64) string {
	if n == 0 {
		return wordZero
	}
	if n < 0 {
		return wordMinus + " " + Cardinal(-n)
	}

	var elements []string
	if b := n / 1_000_000_000; b > 0 {
		elements = append(elements, scale(b, wordBillion))
	}
	if m := n / 1_000_000 % 1000; m > 0 {
		elements = append(elements, scale(m, wordMillion))
	}
	if t := n / 1000 % 1000; t > 0 {
		elements = append(elements, thousands(t))
	}
	elements = append(elements, belowThousand(n%1000)...)
	return joinWithAnd(elements)
}

func joinWithAnd(elements []string) string {
	if len(elements) > 1 {
		elements[len(elements)-1] = wordAnd + elements[len(elements)-1]
	}
	return strings.Join(elements, " ")
}

func scale(n int64, word string) string {
	switch n {
	case 1:
		return word
	case 2:
		return wordTwoOf + " " + word
	default:
		return Cardinal(n) + " " + word
	}
}

func thousands(n int64) string {
	switch {
	case n == 1:
		return wordThousand
	case n == 2:
		return "אלפיים"
	case n <= 10:
		return thousandsNames[n] + " אלפים"
	default:
		return Cardinal(n) + " " + wordThousand
	}
}

func belowThousand(n int64) []string {
	var elements []string
	switch h := n / 100; {
	case h == 1:
		elements = append(elements, wordHundred)
	case h == 2:
		elements = append(elements, "מאתיים")
	case h > 2:
		elements = append(elements, onesNames[h]+" "+wordHundreds)
	}
	switch r := n % 100; {
	case r == 0:
	case r < 10:
		elements = append(elements, onesNames[r])
	case r < 20:
		elements = append(elements, teenNames[r-10])
	default:
		elements = append(elements, tensNames[r/10])
		if r%10 != 0 {
			elements = append(elements, onesNames[r%10])
		}
	}
	return elements
}

// Digits reads each digit of s on its own.
func Digits(s string) string {
	words := make([]string, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if r == '0' {
			words = append(words, wordZero)
		} else {
			words = append(words, onesNames[r-'0'])
		}
	}
	return strings.Join(words, " ")
}

// SpellNumber spells a numeric literal: an optional minus sign, digits
// with optional thousands separators (1,000,000) and an optional decimal
// part after a point or a single comma. It reports false when s is not such
// a literal.
func SpellNumber(s string) (string, bool) {
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return "", false
	}

	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == ',' })
	for _, p := range parts {
		if !isDigits(p) {
			return "", false
		}
	}
	if len(parts) == 0 || strings.Count(s, ".")+strings.Count(s, ",") != len(parts)-1 {
		return "", false
	}

	intPart, fracPart := parts[0], ""
	switch {
	case len(parts) == 1:
	case isThousandsGrouping(s, parts):
		intPart = strings.Join(parts, "")
	case len(parts) == 2:
		fracPart = parts[1]
	default:
		return "", false
	}

	var words string
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil && n <= maxCardinal {
		words = Cardinal(n)
	} else {
		words = Digits(intPart)
	}
	if fracPart != "" {
		words += " " + wordPoint + " " + Digits(fracPart)
	}
	if negative {
		words = wordMinus + " " + words
	}
	return words, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isThousandsGrouping(s string, parts []string) bool {
	if strings.Contains(s, ".") || len(parts[0]) > 3 {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}

var numberPattern = regexp.MustCompile(`[^\d\-]?-?\d+(?:[.,]\d+)*[^\d]?`)

// NumberToWords replaces every number inside word with vocalized Hebrew
// words. A non digit character glued to either side of a number, such as a
// currency sign or punctuation, is kept and separated by a space. Numbers
// that cannot be spelled are left as they are.
func NumberToWords(word string) string {
	return numberPattern.ReplaceAllStringFunc(word, func(match string) string {
		num := []rune(match)
		var prefix, suffix string
		if num[0] != '-' && !isDigit(num[0]) {
			prefix = string(num[0])
			num = num[1:]
		}
		if len(num) > 0 && !isDigit(num[len(num)-1]) {
			suffix = string(num[len(num)-1])
			num = num[:len(num)-1]
		}
		words, ok := SpellNumber(string(num))
		if !ok {
			return match
		}
		return joinNonEmpty(strings.TrimSpace(prefix), AddDiacritics(words), strings.TrimSpace(suffix))
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
