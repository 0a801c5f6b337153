package hebrew

// See https://en.wikipedia.org/wiki/Unicode_and_HTML_for_the_Hebrew_alphabet#Compact_table

// Non standard diacritics used as annotations.
const (
	VocalShva  = '\u05BD' // Meteg
	Hatama     = '\u05AB' // Ole, marks stress
	Prefix     = '|'      // Marks the end of a prefix (txiliyot)
	NikudHaser = '\u05AF' // Masora circle, the letter is not pronounced
	EnGeresh   = '\''
)

// Standard nikud.
const (
	Shva        = '\u05B0'
	HatafSegol  = '\u05B1'
	HatafPatah  = '\u05B2'
	HatafKamatz = '\u05B3'
	Hirik       = '\u05B4'
	Tsere       = '\u05B5'
	Segol       = '\u05B6'
	Patah       = '\u05B7'
	Kamatz      = '\u05B8'
	Holam       = '\u05B9'
	HolamHaser  = '\u05BA' // Holam haser for vav
	Kubuts      = '\u05BB'
	Dagesh      = '\u05BC'
	ShinDot     = '\u05C1'
	SinDot      = '\u05C2'
	KamatzKatan = '\u05C7'
)

// StressPhoneme is U+02C8, it looks like a single quote.
const StressPhoneme = "ˈ"

// Punctuation kept in the output when punctuation is preserved.
const Punctuation = ".,!? "

// nonStandardDiacritics are matched together with the Hebrew block.
const nonStandardDiacritics = string(VocalShva) + string(Hatama) + string(Prefix) + string(NikudHaser) + string(EnGeresh)

// phoneticDiacritics are filtered out of Letter.Diac.
var phoneticDiacritics = map[rune]bool{
	Hatama:    true,
	Prefix:    true,
	VocalShva: true,
}

// SpecialPhonemes are emitted by rules rather than tables.
var SpecialPhonemes = []string{"w"}

// ModernSchema maps plain symbols to their modern IPA variants.
var ModernSchema = []struct{ From, To string }{
	{"x", "χ"}, // Het
	{"r", "ʁ"}, // Resh
	{"g", "ɡ"}, // Gimel
}

// GereshPhonemes maps letters carrying a geresh to borrowed sounds.
var GereshPhonemes = map[rune]string{
	'ג': "dʒ",
	'ז': "ʒ",
	'ת': "ta",
	'צ': "tʃ",
	'ץ': "tʃ",
}

// LetterPhonemes maps consonants, with the dagesh and shin/sin digraphs, to
// phonemes.
var LetterPhonemes = map[string]string{
	"א": "ʔ", // Alef
	"ב": "v", // Bet
	"ג": "g", // Gimel
	"ד": "d", // Dalet
	"ה": "h", // He
	"ו": "v", // Vav
	"ז": "z", // Zayin
	"ח": "x", // Het
	"ט": "t", // Tet
	"י": "j", // Yod
	"ך": "x", // Haf sofit
	"כ": "x", // Haf
	"ל": "l", // Lamed
	"ם": "m", // Mem sofit
	"מ": "m", // Mem
	"ן": "n", // Nun sofit
	"נ": "n", // Nun
	"ס": "s", // Samekh
	"ע": "ʔ", // Ayin, only voweled
	"פ": "f", // Fey
	"ף": "f", // Fey sofit
	"ץ": "ts", // Tsadik sofit
	"צ": "ts", // Tsadik
	"ק": "k", // Kuf
	"ר": "r", // Resh
	"ש": "ʃ", // Shin
	"ת": "t", // Taf
	// Beged kefet
	"ב\u05BC": "b",
	"כ\u05BC": "k",
	"פ\u05BC": "p",
	// Shin sin
	"ש\u05C1": "ʃ",
	"ש\u05C2": "s",
	"'":       "",
}

// NikudPhonemes maps vowel diacritics and the stress/vocal shva annotations.
var NikudPhonemes = map[rune]string{
	Hirik:       "i",
	HatafSegol:  "e",
	Tsere:       "e",
	Segol:       "e",
	HatafPatah:  "a",
	Patah:       "a",
	KamatzKatan: "o",
	Holam:       "o",
	HolamHaser:  "o",
	Kubuts:      "u",
	HatafKamatz: "o",
	Kamatz:      "a",
	Hatama:      StressPhoneme,
	VocalShva:   "e",
}

// deduplicate folds Hebrew punctuation into ASCII.
var deduplicate = map[rune]rune{
	'\u05F3': '\'', // Geresh
	'\u05F4': '"',  // Gershayim
	'\u05BE': '-',  // Makaf
}

// IsHebrew reports whether r belongs to a Hebrew word run: letters, nikud,
// the non standard markers and gershayim.
func IsHebrew(r rune) bool {
	if r >= '\u05B0' && r <= 'ת' {
		return true
	}
	return r == '"' || isNonStandardDiacritic(r)
}

// IsNikud reports whether r is a Hebrew diacritic or one of the markers.
func IsNikud(r rune) bool {
	if r >= '\u05B0' && r <= '\u05C7' {
		return true
	}
	return isNonStandardDiacritic(r)
}

func isNonStandardDiacritic(r rune) bool {
	for _, d := range nonStandardDiacritics {
		if r == d {
			return true
		}
	}
	return false
}

// IsPunctuation reports whether r is kept as punctuation.
func IsPunctuation(r rune) bool {
	for _, p := range Punctuation {
		if r == p {
			return true
		}
	}
	return false
}
