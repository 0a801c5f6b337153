package hebrew

import (
	"strings"
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "שלום", "שלום"},
		{"sorts marks by code point", "\u05E9\u05C1\u05B8", "\u05E9\u05B8\u05C1"},
		{"reorders permuted marks", "בַּ", "בַּ"},
		{"hatama sorted first", "לָ֫", "לָ֫"},
		{"gershayim", "צה״ל", "צה\"ל"},
		{"geresh", "ג׳", "ג'"},
		{"makaf", "בית־ספר", "בית-ספר"},
		{"decomposes precomposed", "שׁ", "שׁ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"שָׁלוֹם",
		"בַּ֫",
		"hello עוֹלָם 123",
		"שָׁ",
	}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeOrderInvariance(t *testing.T) {
	perms := []string{
		"שָׁ֫",
		"שָׁ֫",
		"שָׁ֫",
		"שָׁ֫",
	}
	want := Normalize(perms[0])
	for _, p := range perms[1:] {
		if got := Normalize(p); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", p, got, want)
		}
	}
}

func TestRemoveNikud(t *testing.T) {
	tests := []struct {
		input string
		keep  string
		want  string
	}{
		{"שָׁלוֹם", "", "שלום"},
		{"ג'ירפה", "", "גירפה"},
		{"ב|ַיִת", "", "בית"},
		{"בַ֫", string(Hatama), "ב֫"},
		{"abc", "", "abc"},
	}
	for _, tt := range tests {
		if got := RemoveNikud(tt.input, tt.keep); got != tt.want {
			t.Errorf("RemoveNikud(%q, %q) = %q, want %q", tt.input, tt.keep, got, tt.want)
		}
	}
}

func TestSegment(t *testing.T) {
	letters := Segment(Normalize("שָׁלוֹם"))
	if len(letters) != 4 {
		t.Fatalf("Expected 4 letters, got %d", len(letters))
	}
	if letters[0].Char != 'ש' || letters[0].Diacritics != "ָׁ" {
		t.Errorf("Unexpected first letter %q", letters[0].String())
	}
	if letters[2].Char != 'ו' || !letters[2].Has(Holam) {
		t.Errorf("Expected vav with holam, got %q", letters[2].String())
	}
	if Letters(letters) != Normalize("שָׁלוֹם") {
		t.Errorf("Letters did not reconstruct the word: %q", Letters(letters))
	}
}

func TestSegmentMarkers(t *testing.T) {
	letters := Segment("ג'וּ|ב")
	if len(letters) != 3 {
		t.Fatalf("Expected 3 letters, got %d", len(letters))
	}
	if !letters[0].Has(EnGeresh) {
		t.Error("Expected geresh attached to the first letter")
	}
	if !letters[1].Has(Prefix) || !letters[1].Has(Dagesh) {
		t.Errorf("Expected dagesh and prefix on vav, got %q", letters[1].String())
	}
	if !strings.HasSuffix(letters[1].Diacritics, "|") {
		t.Errorf("Expected prefix marker last, got %q", letters[1].Diacritics)
	}
}

func TestSegmentSkipsNonLetters(t *testing.T) {
	letters := Segment("\"א1-ב")
	if len(letters) != 2 || letters[0].Char != 'א' || letters[1].Char != 'ב' {
		t.Errorf("Unexpected letters %v", letters)
	}
}

func TestLetterDiac(t *testing.T) {
	l := NewLetter('ל', "|ְֽ֫")
	if l.Diac() != "ְ" {
		t.Errorf("Expected only shva from Diac, got %q", l.Diac())
	}
	if l.Diacritics != "ְֽ֫|" {
		t.Errorf("Unexpected canonical order %q", l.Diacritics)
	}
	if !l.HasDiac(Shva) || l.HasDiac(Hatama) {
		t.Error("HasDiac should ignore phonetic diacritics")
	}
}

func TestLetterAddRemove(t *testing.T) {
	l := NewLetter('מ', "ָ")
	stressed := l.AddDiacritic(Hatama)
	if stressed.Diacritics != "ָ֫" {
		t.Errorf("Unexpected diacritics after add: %q", stressed.Diacritics)
	}
	if l.Has(Hatama) {
		t.Error("AddDiacritic must not modify the receiver")
	}
	if !stressed.AddDiacritic(Hatama).Equal(stressed) {
		t.Error("Adding an existing diacritic should be a no-op")
	}
	if !stressed.RemoveDiacritic(Hatama).Equal(l) {
		t.Error("RemoveDiacritic should undo AddDiacritic")
	}
	if l.Equal(NewLetter('נ', "ָ")) {
		t.Error("Letters with different base characters must differ")
	}
}

func TestIsHebrew(t *testing.T) {
	for _, r := range "אתְ֫|'\"" {
		if !IsHebrew(r) {
			t.Errorf("Expected %q to be Hebrew", r)
		}
	}
	for _, r := range "a1 .-" {
		if IsHebrew(r) {
			t.Errorf("Expected %q not to be Hebrew", r)
		}
	}
}

func TestSymbolSet(t *testing.T) {
	for _, r := range "ʔvgdhzxtjlmnsfkrʃpaeiouˈwχʁɡʒ" {
		if !IsPhoneme(r) {
			t.Errorf("Expected %q to be a phoneme symbol", r)
		}
	}
	for _, r := range "qy! " {
		if IsPhoneme(r) {
			t.Errorf("Expected %q not to be a phoneme symbol", r)
		}
	}
	if !IsPhonemeString("ts") || !IsPhonemeString("dʒ") {
		t.Error("Unexpected IsPhonemeString result")
	}
	if IsPhonemeString("qa") {
		t.Error("Expected qa to be invalid")
	}
}

func TestRegistry(t *testing.T) {
	var nilReg *Registry
	nilReg.Register("q")
	if nilReg.Contains('q') || nilReg.Len() != 0 {
		t.Error("nil registry should stay empty")
	}

	reg := NewRegistry()
	var wg sync.WaitGroup
	for _, s := range []string{"qɪ", "ɛq", "ʊ"} {
		wg.Add(1)
		go func(s string) {
			defer wg.Done()
			reg.Register(s)
		}(s)
	}
	wg.Wait()

	if reg.Len() != 4 {
		t.Errorf("Expected 4 symbols, got %d (%s)", reg.Len(), reg)
	}
	if !reg.Valid('q') || !reg.Valid('a') || reg.Valid('y') {
		t.Error("Unexpected Valid result")
	}
	if reg.String() != "qɛɪʊ" {
		t.Errorf("Unexpected registry listing %q", reg.String())
	}
}

func TestUnicodeNames(t *testing.T) {
	names := UnicodeNames("שׁ")
	if len(names) != 2 {
		t.Fatalf("Expected 2 names, got %d", len(names))
	}
	if names[0] != "HEBREW LETTER SHIN" || names[1] != "HEBREW POINT SHIN DOT" {
		t.Errorf("Unexpected names %v", names)
	}
	desc := DescribeRunes("א")
	if desc[0] != "U+05D0 HEBREW LETTER ALEF" {
		t.Errorf("Unexpected description %q", desc[0])
	}
}
