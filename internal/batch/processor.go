package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one line of a batch file
type Entry struct {
	Text     string
	Expected string // Reference phonemes, empty when not given
	Line     int
}

// HasExpected reports whether the entry carries reference phonemes
func (e Entry) HasExpected() bool {
	return e.Expected != ""
}

// ReadBatchFile reads entries from a file
// Supports formats:
// - Text only: "שָׁלוֹם" (phonemized, nothing to compare)
// - With reference: "שָׁלוֹם = ʃalˈom" (phonemized and compared)
// Blank lines and lines starting with '#' are ignored.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatch(string(content)), nil
}

// ParseBatch parses batch file content
func ParseBatch(content string) []Entry {
	var entries []Entry

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		text, expected, found := strings.Cut(line, "=")
		if found {
			text = strings.TrimSpace(text)
			expected = strings.TrimSpace(expected)
		}
		// Ignore lines with an empty text part
		if text == "" {
			continue
		}

		entries = append(entries, Entry{
			Text:     text,
			Expected: expected,
			Line:     i + 1,
		})
	}

	return entries
}

// Result is the outcome of one evaluated entry
type Result struct {
	Entry    Entry
	Got      string
	Distance int
}

// Match reports whether the output equals the reference
func (r Result) Match() bool {
	return r.Entry.HasExpected() && r.Distance == 0
}

// Report summarizes a batch run
type Report struct {
	Results       []Result
	Compared      int // Entries with a reference
	Exact         int // Compared entries without a single edit
	TotalDistance int
	TotalSymbols  int // Reference length in runes
}

// ErrorRate returns the symbol error rate over compared entries
func (r Report) ErrorRate() float64 {
	if r.TotalSymbols == 0 {
		return 0
	}
	return float64(r.TotalDistance) / float64(r.TotalSymbols)
}

// Evaluate runs phonemize over every entry and compares the output with the
// reference phonemes where present.
func Evaluate(entries []Entry, phonemize func(string) string) Report {
	var report Report
	for _, entry := range entries {
		res := Result{Entry: entry, Got: phonemize(entry.Text)}
		if entry.HasExpected() {
			res.Distance = EditDistance(res.Got, entry.Expected)
			report.Compared++
			report.TotalDistance += res.Distance
			report.TotalSymbols += len([]rune(entry.Expected))
			if res.Distance == 0 {
				report.Exact++
			}
		}
		report.Results = append(report.Results, res)
	}
	return report
}

// EditDistance computes the Levenshtein distance between two phoneme
// strings, counting runes.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Use single-row DP to save memory.
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev = cur
	}
	return prev[lb]
}
