package hebrew

import (
	"sort"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

const normalizeCacheSize = 10000

var normalizeCache = mustCache(normalizeCacheSize)

func mustCache(size int) *lru.Cache[string, string] {
	c, err := lru.New[string, string](size)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize decomposes text to NFD, sorts the combining marks of every letter
// by code point and folds Hebrew geresh, gershayim and makaf into ASCII.
// Results are memoized in a bounded LRU cache safe for concurrent use.
func Normalize(text string) string {
	if v, ok := normalizeCache.Get(text); ok {
		return v
	}
	out := normalize(text)
	normalizeCache.Add(text, out)
	return out
}

func normalize(text string) string {
	runes := []rune(norm.NFD.String(text))
	for i := 0; i < len(runes); i++ {
		if !unicode.IsLetter(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.Is(unicode.M, runes[j]) {
			j++
		}
		if j-i > 2 {
			marks := runes[i+1 : j]
			sort.Slice(marks, func(a, b int) bool { return marks[a] < marks[b] })
		}
		i = j - 1
	}
	for i, r := range runes {
		if d, ok := deduplicate[r]; ok {
			runes[i] = d
		}
	}
	return string(runes)
}

// RemoveNikud strips Hebrew diacritics and the non standard markers from
// text. Runes listed in keep are preserved.
func RemoveNikud(text string, keep string) string {
	return strings.Map(func(r rune) rune {
		if IsNikud(r) && !strings.ContainsRune(keep, r) {
			return -1
		}
		return r
	}, text)
}
