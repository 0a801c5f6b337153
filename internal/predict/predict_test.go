package predict

import (
	"testing"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
)

func segment(word string) []hebrew.Letter {
	return hebrew.Segment(hebrew.Normalize(word))
}

func TestMarkVocalShva(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{"lamed with shva", "לְמַד", true},
		{"shva before guttural", "תְּאֵנָה", true},
		{"prefix marker", "בְּ|בַיִת", true},
		{"plain shva", "סְפָרִים", false},
		{"no shva", "מָה", false},
		{"lamed with a vowel", "לָמַד", false},
		{"prefix letter without marker", "בְּבַיִת", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			letters := segment(tt.word)
			got := MarkVocalShva(letters)
			if got[0].Has(hebrew.VocalShva) != tt.want {
				t.Errorf("MarkVocalShva(%q) marked=%v, want %v", tt.word, got[0].Has(hebrew.VocalShva), tt.want)
			}
			if letters[0].Has(hebrew.VocalShva) {
				t.Error("MarkVocalShva modified its input")
			}
		})
	}
}

func TestMarkVocalShvaEmpty(t *testing.T) {
	if got := MarkVocalShva(nil); len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}
}

func TestAddMilraStress(t *testing.T) {
	letters := segment("שָׁלוֹם")
	if HasStress(letters) {
		t.Fatal("Expected no stress before prediction")
	}
	got := AddMilraStress(letters)
	if !got[1].Has(hebrew.Hatama) {
		t.Errorf("Expected stress on the last syllable, got %q", hebrew.Letters(got))
	}
	if !HasStress(got) {
		t.Error("HasStress should see the predicted stress")
	}
}

func TestRelocateStress(t *testing.T) {
	letters := []hebrew.Letter{
		hebrew.NewLetter('א', string(hebrew.NikudHaser)+string(hebrew.Hatama)),
		hebrew.NewLetter('ב', string(hebrew.Patah)),
		hebrew.NewLetter('ג', ""),
	}
	got := RelocateStress(letters)
	if got[0].Has(hebrew.Hatama) {
		t.Error("Expected stress removed from the silent letter")
	}
	if !got[1].Has(hebrew.Hatama) || !got[1].Has(hebrew.Patah) {
		t.Errorf("Expected stress moved to the next letter, got %q", got[1].String())
	}
	if !letters[0].Has(hebrew.Hatama) {
		t.Error("RelocateStress modified its input")
	}
}

func TestRelocateStressChain(t *testing.T) {
	letters := []hebrew.Letter{
		hebrew.NewLetter('א', string(hebrew.NikudHaser)+string(hebrew.Hatama)),
		hebrew.NewLetter('ו', string(hebrew.NikudHaser)),
		hebrew.NewLetter('ב', string(hebrew.Kamatz)),
	}
	got := RelocateStress(letters)
	if got[0].Has(hebrew.Hatama) || got[1].Has(hebrew.Hatama) || !got[2].Has(hebrew.Hatama) {
		t.Errorf("Expected stress on the first pronounced letter, got %q", hebrew.Letters(got))
	}
}

func TestRelocateStressLastLetter(t *testing.T) {
	letters := []hebrew.Letter{hebrew.NewLetter('א', string(hebrew.NikudHaser)+string(hebrew.Hatama))}
	got := RelocateStress(letters)
	if !got[0].Has(hebrew.Hatama) {
		t.Error("A stress on the last letter has nowhere to move")
	}
}
