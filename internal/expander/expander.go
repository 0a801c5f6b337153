// Package expander rewrites dates, times and numbers into vocalized Hebrew
// words and applies dictionary substitution, before phoneme rules run.
package expander

import (
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/dictionary"
	"github.com/tsachovadia/RapTrainer/internal/logging"
)

// Expander expands a text token by token.
type Expander struct {
	dict *dictionary.Dictionary

	// IncludeDayName prefixes expanded dates with the weekday name.
	IncludeDayName bool
}

// New creates an expander backed by dict. A nil dictionary disables the
// substitution step.
func New(dict *dictionary.Dictionary) *Expander {
	return &Expander{dict: dict}
}

// Dictionary returns the backing dictionary.
func (e *Expander) Dictionary() *dictionary.Dictionary {
	return e.dict
}

// ExpandWord tries the date, time and number parsers in order. The first
// one that changes the word wins.
func (e *Expander) ExpandWord(word string) string {
	if out := DateToWords(word, e.IncludeDayName); out != word {
		return out
	}
	if out, ok := TimeToWords(word); ok && out != word {
		return out
	} else if !ok {
		logging.Logger().Debug("time out of range, trying number", "word", word)
	}
	return NumberToWords(word)
}

// ExpandText expands every whitespace separated word, joins the words with
// single spaces and applies the dictionary to the result.
func (e *Expander) ExpandText(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = e.ExpandWord(w)
	}
	return e.dict.Expand(strings.Join(words, " "))
}
