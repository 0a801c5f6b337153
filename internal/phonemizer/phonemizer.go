// Package phonemizer converts Hebrew text, with or without nikud, into an
// IPA phoneme string. It chains normalization, expansion, per word
// prediction and rules, and post-processing.
package phonemizer

import (
	"regexp"
	"strings"
	"sync"

	"github.com/tsachovadia/RapTrainer/internal/dictionary"
	"github.com/tsachovadia/RapTrainer/internal/expander"
	"github.com/tsachovadia/RapTrainer/internal/hebrew"
	"github.com/tsachovadia/RapTrainer/internal/postprocess"
	"github.com/tsachovadia/RapTrainer/internal/predict"
	"github.com/tsachovadia/RapTrainer/internal/rules"
)

var (
	fallbackPattern     = regexp.MustCompile(`[a-zA-Z]+`)
	hyperPhonemePattern = regexp.MustCompile(`\[(.+?)\]\(/(.+?)/\)`)
)

// Phonemizer is safe for concurrent use.
type Phonemizer struct {
	dict     *dictionary.Dictionary
	expander *expander.Expander
}

// New creates a phonemizer using dict for expansion and fallback skipping.
func New(dict *dictionary.Dictionary) *Phonemizer {
	return &Phonemizer{dict: dict, expander: expander.New(dict)}
}

// NewDefault creates a phonemizer backed by the embedded dictionary.
func NewDefault() (*Phonemizer, error) {
	dict, err := dictionary.Default()
	if err != nil {
		return nil, err
	}
	return New(dict), nil
}

// Dictionary returns the dictionary the phonemizer expands with.
func (p *Phonemizer) Dictionary() *dictionary.Dictionary {
	return p.dict
}

// Phonemize converts text to phonemes. It never fails: unknown symbols are
// dropped rather than reported.
func (p *Phonemizer) Phonemize(text string, opts Options) string {
	reg := opts.Registry
	if reg == nil {
		reg = hebrew.NewRegistry()
	}

	text = hebrew.Normalize(text)

	if opts.Fallback != nil {
		text = outsideHyperPhonemes(text, func(s string) string {
			return fallbackPattern.ReplaceAllStringFunc(s, func(word string) string {
				if p.dict.Contains(word) {
					return word
				}
				phonemes := strings.TrimSpace(opts.Fallback(word))
				reg.Register(phonemes)
				return phonemes
			})
		})
	}

	if opts.UseExpander {
		text = p.expander.ExpandText(text)
	}

	text = replaceHebrewRuns(text, func(word string) string {
		return p.PhonemizeWord(word, opts)
	})

	text = hyperPhonemePattern.ReplaceAllStringFunc(text, func(match string) string {
		phonemes := hyperPhonemePattern.FindStringSubmatch(match)[2]
		reg.Register(phonemes)
		return phonemes
	})

	if !opts.PreservePunctuation {
		text = postprocess.StripPunctuation(text)
	}
	if !opts.PreserveStress {
		text = postprocess.StripStress(text)
	}
	if opts.UsePostNormalize {
		text = postprocess.Clean(text, reg)
	}
	return text
}

// PhonemizeWord converts a single normalized Hebrew word.
func (p *Phonemizer) PhonemizeWord(word string, opts Options) string {
	letters := hebrew.Segment(word)
	if opts.PredictShvaNah {
		letters = predict.MarkVocalShva(letters)
	}
	if opts.PredictStress && !predict.HasStress(letters) {
		letters = predict.AddMilraStress(letters)
	}
	letters = predict.RelocateStress(letters)

	placement := opts.StressPlacement
	if placement == "" {
		placement = rules.PlacementVowel
	}
	var phonemes string
	if list := rules.Phonemize(letters, placement); placement == rules.PlacementSyllable {
		phonemes = postprocess.MoveStressToSyllableStart(list)
	} else {
		phonemes = postprocess.MoveStressToVowel(strings.Join(list, ""))
	}
	if opts.UsePostNormalize {
		phonemes = postprocess.Normalize(phonemes)
	}
	return postprocess.ApplySchema(phonemes, opts.Schema)
}

// replaceHebrewRuns maps every maximal run of Hebrew letters and marks
// through fn. A run opened by "[" belongs to an inline phoneme override and
// is kept.
func replaceHebrewRuns(text string, fn func(string) string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
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
		run := string(runes[i:j])
		if i > 0 && runes[i-1] == '[' {
			b.WriteString(run)
		} else {
			b.WriteString(fn(run))
		}
		i = j
	}
	return b.String()
}

// outsideHyperPhonemes applies fn to the parts of text that are not inline
// phoneme overrides.
func outsideHyperPhonemes(text string, fn func(string) string) string {
	locs := hyperPhonemePattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return fn(text)
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(fn(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(fn(text[last:]))
	return b.String()
}

var defaultPhonemizer = sync.OnceValues(NewDefault)

// Default returns the shared phonemizer backed by the embedded dictionary.
func Default() (*Phonemizer, error) {
	return defaultPhonemizer()
}

// Phonemize converts text with the shared default phonemizer. It panics if
// the embedded dictionary cannot be loaded, which only happens with a
// corrupted build.
func Phonemize(text string, opts Options) string {
	p, err := Default()
	if err != nil {
		panic("phonemizer: " + err.Error())
	}
	return p.Phonemize(text, opts)
}
