// Package dictionary loads the tiered lexical override tables and applies
// them to text. Tier files are JSON objects mapping a token to its
// replacement, either vocalized Hebrew or an inline phoneme override. The
// tier is taken from the file name: bronze < silver < gold, higher tiers
// overwrite lower ones.
package dictionary

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/tsachovadia/RapTrainer/internal/hebrew"
	"github.com/tsachovadia/RapTrainer/internal/logging"
)

// ErrNoTiers is returned when a dictionary location holds no tier files.
var ErrNoTiers = errors.New("no dictionary tier files found")

//go:embed data/*.json
var embedded embed.FS

var tierRanks = []struct {
	name string
	rank int
}{
	{"bronze", 1},
	{"silver", 2},
	{"gold", 3},
}

// TierRank returns the precedence of a tier file name. Names without a known
// tier rank below bronze.
func TierRank(filename string) int {
	stem := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	for _, t := range tierRanks {
		if strings.Contains(stem, t.name) {
			return t.rank
		}
	}
	return 0
}

// Tier describes one loaded tier file.
type Tier struct {
	Name    string
	Rank    int
	Entries int
	Skipped int
}

// Dictionary is immutable after loading and safe for concurrent reads.
type Dictionary struct {
	entries map[string]string
	tiers   []Tier
}

// New builds a dictionary from a single in-memory table.
func New(entries map[string]string) *Dictionary {
	d := &Dictionary{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		d.put(k, v)
	}
	return d
}

func (d *Dictionary) put(key, value string) bool {
	key = hebrew.Normalize(key)
	if key == "" || value == "" {
		return false
	}
	d.entries[key] = value
	return true
}

// Load reads every *.json file at the root of fsys in tier order.
func Load(fsys fs.FS) (*Dictionary, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list dictionary files: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrNoTiers
	}
	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool {
		return TierRank(names[i]) < TierRank(names[j])
	})

	d := &Dictionary{entries: make(map[string]string)}
	for _, name := range names {
		tier, err := d.loadTier(fsys, name)
		if err != nil {
			return nil, err
		}
		d.tiers = append(d.tiers, tier)
		logging.Logger().Debug("loaded dictionary tier", "file", name, "rank", tier.Rank, "entries", tier.Entries)
	}
	return d, nil
}

// LoadDir loads the tier files found in dir.
func LoadDir(dir string) (*Dictionary, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dictionary path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

var defaultDictionary = sync.OnceValues(func() (*Dictionary, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
})

// Default returns the dictionary built from the embedded tier files. It is
// loaded once and shared.
func Default() (*Dictionary, error) {
	return defaultDictionary()
}

func (d *Dictionary) loadTier(fsys fs.FS, name string) (Tier, error) {
	tier := Tier{Name: name, Rank: TierRank(name)}
	f, err := fsys.Open(name)
	if err != nil {
		return tier, fmt.Errorf("failed to open dictionary %s: %w", name, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return tier, fmt.Errorf("failed to parse dictionary %s: %w", name, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return tier, fmt.Errorf("failed to parse dictionary %s: expected a JSON object", name)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return tier, fmt.Errorf("failed to parse dictionary %s: %w", name, err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return tier, fmt.Errorf("failed to parse dictionary %s: %w", name, err)
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil || !d.put(key, value) {
			tier.Skipped++
			logging.Logger().Debug("skipping dictionary entry", "file", name, "key", key)
			continue
		}
		tier.Entries++
	}
	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return tier, fmt.Errorf("failed to parse dictionary %s: %w", name, err)
	}
	return tier, nil
}

// Lookup returns the replacement stored for token.
func (d *Dictionary) Lookup(token string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.entries[token]
	return v, ok
}

// Contains reports whether token is a key.
func (d *Dictionary) Contains(token string) bool {
	_, ok := d.Lookup(token)
	return ok
}

// Len returns the number of entries after tier merging.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Tiers lists the loaded tier files in load order.
func (d *Dictionary) Tiers() []Tier {
	if d == nil {
		return nil
	}
	return append([]Tier(nil), d.tiers...)
}
