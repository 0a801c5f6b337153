package rules

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

func letter(char rune, diacritics ...rune) hebrew.Letter {
	return hebrew.NewLetter(char, string(diacritics))
}

func TestPhonemizeString(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{"shalom", "שָׁלוֹם", "ʃalom"},
		{"dagesh bet", "בַּיִת", "bajit"},
		{"shuruk and gnuva", "רוּחַ", "ruax"},
		{"sin", "שָׂדֶה", "sadeh"},
		{"sin shin digraph", "יִשָׂשכָר", "jisaxar"},
		{"geresh", "ג'ִירָפָה", "dʒirafah"},
		{"vav after shva", "מִצְוָה", "mitsvah"},
		{"vav holam after shva", "לִגְוֹעַ", "ligvoa"},
		{"kamatz before hataf kamatz", "צָהֳרַיִם", "tsohorajim"},
		{"silent alef", "רֹאשׁ", "roʃ"},
		{"vocal shva", "לְֽמַד", "lemad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhonemizeString(hebrew.Normalize(tt.word), PlacementVowel)
			if got != tt.want {
				t.Errorf("PhonemizeString(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestPhonemizeLetters(t *testing.T) {
	tests := []struct {
		name    string
		letters []hebrew.Letter
		want    string
	}{
		{
			name:    "two holams",
			letters: []hebrew.Letter{letter('ו', hebrew.Holam), letter('ו', hebrew.Holam), letter('ת')},
			want:    "wot",
		},
		{
			name:    "one holam",
			letters: []hebrew.Letter{letter('ו'), letter('ו', hebrew.Holam), letter('ת')},
			want:    "vot",
		},
		{
			name:    "identical vavs",
			letters: []hebrew.Letter{letter('ק', hebrew.Patah), letter('ו'), letter('ו'), letter('ה')},
			want:    "kavuh",
		},
		{
			name:    "vav hirik before vav",
			letters: []hebrew.Letter{letter('ו', hebrew.Hirik), letter('ו', hebrew.Dagesh)},
			want:    "viu",
		},
		{
			name:    "nikud haser",
			letters: []hebrew.Letter{letter('א', hebrew.NikudHaser), letter('ב', hebrew.Patah)},
			want:    "va",
		},
		{
			name:    "nikud haser suppresses geresh",
			letters: []hebrew.Letter{letter('ג', hebrew.NikudHaser, hebrew.EnGeresh), letter('ב', hebrew.Patah)},
			want:    "va",
		},
		{
			name:    "bare vav before letter is silent",
			letters: []hebrew.Letter{letter('ק', hebrew.Kamatz), letter('ו'), letter('ל')},
			want:    "kal",
		},
		{
			name:    "word initial vav with shva",
			letters: []hebrew.Letter{letter('ו', hebrew.Shva), letter('ג', hebrew.Patah), letter('ם')},
			want:    "vegam",
		},
		{
			name:    "alef before vav is kept",
			letters: []hebrew.Letter{letter('ב', hebrew.Dagesh, hebrew.Kamatz), letter('א'), letter('ו', hebrew.Dagesh)},
			want:    "baʔu",
		},
		{
			name:    "yod after alef tsere is kept",
			letters: []hebrew.Letter{letter('א', hebrew.Tsere), letter('י'), letter('ך')},
			want:    "ʔejx",
		},
		{
			name:    "silent letter drops its stress",
			letters: []hebrew.Letter{letter('ב', hebrew.NikudHaser, hebrew.Hatama)},
			want:    "",
		},
		{
			name:    "stress on silent final letter kept for relocation",
			letters: []hebrew.Letter{letter('ב', hebrew.Patah), letter('א', hebrew.NikudHaser, hebrew.Hatama)},
			want:    "baˈ",
		},
		{
			name:    "geresh tav",
			letters: []hebrew.Letter{letter('ת', hebrew.EnGeresh, hebrew.Patah)},
			want:    "ta",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(Phonemize(tt.letters, PlacementVowel), "")
			if got != tt.want {
				t.Errorf("Phonemize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsonantTable(t *testing.T) {
	for key, want := range hebrew.LetterPhonemes {
		runes := []rune(key)
		if !hebrew.IsHebrew(runes[0]) || runes[0] == hebrew.EnGeresh {
			continue
		}
		l := hebrew.NewLetter(runes[0], string(runes[1:]))
		got := strings.Join(Phonemize([]hebrew.Letter{l}, PlacementVowel), "")
		if got != want {
			t.Errorf("Phonemize(%q) = %q, want %q", key, got, want)
		}

		voweled := l.AddDiacritic(hebrew.Hirik)
		got = strings.Join(Phonemize([]hebrew.Letter{voweled}, PlacementVowel), "")
		if key == "ו" {
			want = "vi"
		} else {
			want += "i"
		}
		if got != want {
			t.Errorf("Phonemize(%q+hirik) = %q, want %q", key, got, want)
		}
	}
}

func TestStressPlacement(t *testing.T) {
	tests := []struct {
		name      string
		letters   []hebrew.Letter
		placement Placement
		want      string
	}{
		{"vowel", []hebrew.Letter{letter('ל', hebrew.Kamatz, hebrew.Hatama)}, PlacementVowel, "lˈa"},
		{"syllable", []hebrew.Letter{letter('ל', hebrew.Kamatz, hebrew.Hatama)}, PlacementSyllable, "ˈla"},
		{"vav vowel", []hebrew.Letter{letter('ו', hebrew.Kamatz, hebrew.Hatama)}, PlacementVowel, "vˈa"},
		{"vav syllable", []hebrew.Letter{letter('ו', hebrew.Kamatz, hebrew.Hatama)}, PlacementSyllable, "ˈva"},
		{"no vowel keeps stress", []hebrew.Letter{letter('ל', hebrew.Hatama)}, PlacementSyllable, "lˈ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(Phonemize(tt.letters, tt.placement), "")
			if got != tt.want {
				t.Errorf("Phonemize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortStress(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		placement Placement
		want      []string
	}{
		{"no stress", []string{"b", "a"}, PlacementVowel, []string{"b", "a"}},
		{"no vowel", []string{"ˈ", "b"}, PlacementVowel, []string{"ˈ", "b"}},
		{"before vowel", []string{"ˈ", "b", "a"}, PlacementVowel, []string{"b", "ˈa"}},
		{"inside digraph", []string{"ˈ", "ax"}, PlacementVowel, []string{"ˈax"}},
		{"consonant cluster", []string{"ts", "ˈ", "o"}, PlacementVowel, []string{"ts", "ˈo"}},
		{"syllable start", []string{"b", "a", "ˈ"}, PlacementSyllable, []string{"ˈ", "b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortStress(tt.input, tt.placement)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortStress(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePlacement(t *testing.T) {
	if p, err := ParsePlacement(" Vowel "); err != nil || p != PlacementVowel {
		t.Errorf("ParsePlacement(vowel) = %q, %v", p, err)
	}
	if p, err := ParsePlacement("syllable"); err != nil || p != PlacementSyllable {
		t.Errorf("ParsePlacement(syllable) = %q, %v", p, err)
	}
	if _, err := ParsePlacement("middle"); err == nil {
		t.Error("Expected error for unknown placement")
	}
}

func TestPhonemizeOutputClosure(t *testing.T) {
	words := []string{"שָׁלוֹם", "עוֹלָם", "ג'ִ", "ח'", "ץ'", "ו'", "יִשְׂרָאֵל", "וָו"}
	for _, w := range words {
		for _, p := range Phonemize(hebrew.Segment(hebrew.Normalize(w)), PlacementVowel) {
			if p == "" || !hebrew.IsPhonemeString(p) {
				t.Errorf("Phonemize(%q) emitted invalid phoneme %q", w, p)
			}
		}
	}
}
