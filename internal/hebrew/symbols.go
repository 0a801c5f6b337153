package hebrew

import (
	"sort"
	"strings"
	"sync"
)

var symbolSet = buildSymbolSet()

func buildSymbolSet() map[rune]bool {
	set := make(map[rune]bool)
	add := func(s string) {
		for _, r := range s {
			set[r] = true
		}
	}
	for _, v := range NikudPhonemes {
		add(v)
	}
	for _, v := range LetterPhonemes {
		add(v)
	}
	for _, v := range GereshPhonemes {
		add(v)
	}
	for _, m := range ModernSchema {
		add(m.To)
	}
	for _, v := range SpecialPhonemes {
		add(v)
	}
	return set
}

// IsPhoneme reports whether r belongs to the fixed phoneme symbol set.
func IsPhoneme(r rune) bool {
	return symbolSet[r]
}

// IsPhonemeString reports whether every rune of s is a fixed phoneme symbol.
func IsPhonemeString(s string) bool {
	for _, r := range s {
		if !symbolSet[r] {
			return false
		}
	}
	return true
}

// Registry is an append-only set of phoneme symbols contributed at runtime
// by fallback transcriptions and inline phoneme overrides. It is safe for
// concurrent use. A nil Registry is empty and ignores additions.
type Registry struct {
	mu      sync.RWMutex
	symbols map[rune]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{symbols: make(map[rune]struct{})}
}

// Register adds every rune of s to the registry.
func (r *Registry) Register(s string) {
	if r == nil || s == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range s {
		r.symbols[c] = struct{}{}
	}
}

// Contains reports whether c was registered.
func (r *Registry) Contains(c rune) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.symbols[c]
	return ok
}

// Valid reports whether c is a fixed phoneme symbol or a registered one.
func (r *Registry) Valid(c rune) bool {
	return IsPhoneme(c) || r.Contains(c)
}

// Len returns the number of registered symbols.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.symbols)
}

// String lists the registered symbols in code point order.
func (r *Registry) String() string {
	if r == nil {
		return ""
	}
	r.mu.RLock()
	runes := make([]rune, 0, len(r.symbols))
	for c := range r.symbols {
		runes = append(runes, c)
	}
	r.mu.RUnlock()
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	var b strings.Builder
	for _, c := range runes {
		b.WriteRune(c)
	}
	return b.String()
}
