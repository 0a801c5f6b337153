package expander

import (
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

// NumberNames maps the plain number words produced by Cardinal to their
// vocalized spelling. ֫ marks a stress that is not on the last syllable.
var NumberNames = map[string]string{
	"אפס":     "אֶ֫פֶס",
	"אחת":     "אַחַת",
	"אחד":     "אֶחָד",
	"שתיים":   "שְׁתַּ֫יִם",
	"שתים":    "שְׁתֵּים",
	"שלוש":    "שָׁלוֹשׁ",
	"ארבע":    "אַ֫רְבַּע",
	"חמש":     "חָמֵשׁ",
	"שש":      "שֵׁשׁ",
	"שבע":     "שֶׁ֫בַע",
	"שמונה":   "שְׁמ֫וֹנֶה",
	"תשע":     "תֵּ֫שַׁע",
	"עשר":     "עֶ֫שֶׂר",
	"עשרה":    "עֶשְׂרֵה",
	"עשרים":   "עֶשְׂרִים",
	"שלושים":  "שְׁלוֹשִׁים",
	"ארבעים":  "אַרְבָּעִים",
	"חמישים":  "חֲמִשִּׁים",
	"שישים":   "שִׁשִּׁים",
	"שבעים":   "שִׁבְעִים",
	"שמונים":  "שְׁמוֹנִים",
	"תשעים":   "תִּשְׁעִים",
	"מאה":     "מֵאָה",
	"מאתיים":  "מָאתַ֫יִם",
	"מאות":    "מֵאוֹת",
	"אלף":     "אֶ֫לֶף",
	"אלפיים":  "אַלְפַּ֫יִם",
	"אלפים":   "אֲלָפִים",
	"שלושת":   "שְׁלוֹשֶׁת",
	"ארבעת":   "אַרְבַּ֫עַת",
	"חמשת":    "חֲמֵ֫שֶׁת",
	"ששת":     "שֵׁ֫שֶׁת",
	"שבעת":    "שִׁבְעַת",
	"שמונת":   "שְׁמוֹנַת",
	"תשעת":    "תִּשְׁעַת",
	"עשרת":    "עֲשֶׂ֫רֶת",
	"מיליון":  "מִילְיוֹן",
	"מיליארד": "מִילְיַארְד",
	"שני":     "שְׁנֵי",
	"מינוס":   "מִ֫ינוּס",
	"נקודה":   "נְקֻדָּה",
}

// teenForms are the construct spellings used before עשרה.
var teenForms = map[string]string{
	"שלוש": "שְׁלוֹשׁ",
	"ארבע": "אַרְבַּע",
	"חמש":  "חֲמֵשׁ",
	"שש":   "שֵׁשׁ",
	"שבע":  "שְׁבַע",
	"תשע":  "תְּשַׁע",
}

// prefixNames vocalizes the one letter prefixes that attach to a number
// word.
var prefixNames = map[rune]string{
	'ו': "וְ",
	'ב': "בְּ",
	'ל': "לְ",
	'ה': "הַ",
	'ש': "שֶׁ",
	'מ': "מִ",
	'כ': "כְּ",
}

func lookupName(word string, beforeTeen bool) (string, bool) {
	if beforeTeen {
		if v, ok := teenForms[word]; ok {
			return v, true
		}
	}
	v, ok := NumberNames[word]
	return v, ok
}

// conjunction picks the vocalization of ו before a vocalized word: shuruk
// before בומ"פ and before a shva, shva otherwise.
func conjunction(next string) string {
	letters := hebrew.Segment(hebrew.Normalize(next))
	if len(letters) > 0 {
		first := letters[0]
		if strings.ContainsRune("במפ", first.Char) || first.HasDiac(hebrew.Shva) {
			return "וּ"
		}
	}
	return "וְ"
}

// AddDiacritics vocalizes the number words of a space separated phrase,
// including words carrying a one letter prefix. Unknown words are kept.
func AddDiacritics(words string) string {
	fields := strings.Fields(words)
	out := make([]string, len(fields))
	for i, w := range fields {
		beforeTeen := i+1 < len(fields) && fields[i+1] == "עשרה"
		if v, ok := lookupName(w, beforeTeen); ok {
			out[i] = v
			continue
		}
		runes := []rune(w)
		if len(runes) > 1 {
			if p, ok := prefixNames[runes[0]]; ok {
				if v, ok := lookupName(string(runes[1:]), beforeTeen); ok {
					if runes[0] == 'ו' {
						p = conjunction(v)
					}
					out[i] = p + v
					continue
				}
			}
		}
		out[i] = w
	}
	return strings.Join(out, " ")
}
