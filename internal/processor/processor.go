package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsachovadia/RapTrainer/internal/batch"
	"github.com/tsachovadia/RapTrainer/internal/cli"
	"github.com/tsachovadia/RapTrainer/internal/dictionary"
	"github.com/tsachovadia/RapTrainer/internal/hebrew"
	"github.com/tsachovadia/RapTrainer/internal/phonemizer"
	"github.com/tsachovadia/RapTrainer/internal/phonetic"
	"github.com/tsachovadia/RapTrainer/internal/store"
)

// Processor handles the main phonemization logic
type Processor struct {
	flags       *cli.Flags
	phonemizer  *phonemizer.Phonemizer
	options     phonemizer.Options
	transcriber phonetic.Transcriber
	storePath   string
	out         io.Writer
}

// NewProcessor creates a processor from flags and the loaded configuration
func NewProcessor(ctx context.Context, flags *cli.Flags) (*Processor, error) {
	dict, err := loadDictionary(cli.DictionaryDir())
	if err != nil {
		return nil, err
	}

	opts, err := cli.PhonemizerOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid phonemization options: %w", err)
	}

	transcriber, err := phonetic.NewTranscriber(cli.TranscriberConfig())
	if err != nil {
		// Don't fail: Latin letters are simply dropped without a transcriber
		fmt.Fprintf(os.Stderr, "Warning: Fallback transcriber unavailable: %v\n", err)
		transcriber = nil
	}

	p := New(flags, phonemizer.New(dict), opts, os.Stdout)
	p.storePath = cli.StorePath()
	p.SetTranscriber(ctx, transcriber)
	return p, nil
}

// New creates a processor from ready made parts
func New(flags *cli.Flags, ph *phonemizer.Phonemizer, opts phonemizer.Options, out io.Writer) *Processor {
	return &Processor{
		flags:      flags,
		phonemizer: ph,
		options:    opts,
		storePath:  flags.StorePath,
		out:        out,
	}
}

// SetTranscriber installs t as the fallback for runs of Latin letters
func (p *Processor) SetTranscriber(ctx context.Context, t phonetic.Transcriber) {
	p.transcriber = t
	p.options.Fallback = phonetic.AsFallback(ctx, t)
}

func loadDictionary(dir string) (*dictionary.Dictionary, error) {
	if dir == "" {
		return dictionary.Default()
	}
	dict, err := dictionary.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary from %s: %w", dir, err)
	}
	for _, tier := range dict.Tiers() {
		if tier.Skipped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %s: skipped %d invalid entries\n", tier.Name, tier.Skipped)
		}
	}
	return dict, nil
}

// Phonemize converts text with the configured options
func (p *Processor) Phonemize(text string) string {
	return p.phonemizer.Phonemize(text, p.options)
}

// optionsSummary describes the options a result was produced with
func (p *Processor) optionsSummary() string {
	return fmt.Sprintf("placement=%s schema=%s", p.options.StressPlacement, p.options.Schema)
}

// ProcessText phonemizes a single text, prints the result and optionally
// saves it to the history database
func (p *Processor) ProcessText(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("text cannot be empty")
	}

	phonemes := p.Phonemize(text)
	fmt.Fprintln(p.out, phonemes)

	if p.flags.Save {
		if err := p.save(ctx, []batch.Result{{Entry: batch.Entry{Text: text}, Got: phonemes}}); err != nil {
			return phonemes, err
		}
	}
	return phonemes, nil
}

// ProcessReader phonemizes every non-empty line read from r
func (p *Processor) ProcessReader(ctx context.Context, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	processed := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := p.ProcessText(ctx, line); err != nil {
			return err
		}
		processed++
	}
	if processed == 0 {
		return fmt.Errorf("no input text")
	}
	return nil
}

// ProcessBatch phonemizes a batch file and scores lines that carry
// reference phonemes
func (p *Processor) ProcessBatch(ctx context.Context) (batch.Report, error) {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return batch.Report{}, err
	}
	if len(entries) == 0 {
		return batch.Report{}, fmt.Errorf("batch file %s has no entries", p.flags.BatchFile)
	}

	report := batch.Evaluate(entries, p.Phonemize)

	for i, res := range report.Results {
		switch {
		case !res.Entry.HasExpected():
			fmt.Fprintf(p.out, "%d/%d: %s\t%s\n", i+1, len(report.Results), res.Entry.Text, res.Got)
		case res.Match():
			fmt.Fprintf(p.out, "%d/%d: ✓ %s\t%s\n", i+1, len(report.Results), res.Entry.Text, res.Got)
		default:
			fmt.Fprintf(p.out, "%d/%d: ✗ %s\t%s (expected %s, distance %d, line %d)\n",
				i+1, len(report.Results), res.Entry.Text, res.Got, res.Entry.Expected, res.Distance, res.Entry.Line)
		}
	}

	// Print summary
	fmt.Fprintf(p.out, "\n=== Batch Summary ===\n")
	fmt.Fprintf(p.out, "Total lines: %d\n", len(report.Results))
	if report.Compared > 0 {
		fmt.Fprintf(p.out, "Compared: %d\n", report.Compared)
		fmt.Fprintf(p.out, "Exact matches: %d\n", report.Exact)
		fmt.Fprintf(p.out, "Symbol error rate: %.2f%%\n", report.ErrorRate()*100)
	}
	fmt.Fprintf(p.out, "=====================\n")

	if p.flags.Save {
		if err := p.save(ctx, report.Results); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (p *Processor) openStore() (*store.Store, error) {
	s, err := store.Open(p.storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return s, nil
}

func (p *Processor) save(ctx context.Context, results []batch.Result) error {
	s, err := p.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	summary := p.optionsSummary()
	for _, res := range results {
		if _, err := s.Save(ctx, res.Entry.Text, res.Got, summary); err != nil {
			return err
		}
	}
	return nil
}

// ShowHistory prints the most recent saved results
func (p *Processor) ShowHistory(ctx context.Context) error {
	s, err := p.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.Recent(ctx, p.flags.HistoryLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(p.out, "No saved results")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(p.out, "%s  %s\t%s\t[%s]\n",
			rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Text, rec.Phonemes, rec.Options)
	}
	return nil
}

// ExportTier writes saved single word results to path as a dictionary tier
func (p *Processor) ExportTier(ctx context.Context, path string) (int, error) {
	if dictionary.TierRank(path) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: %s has no _bronze, _silver or _gold suffix and will be loaded with the lowest priority\n", path)
	}

	s, err := p.openStore()
	if err != nil {
		return 0, err
	}
	defer s.Close()

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create tier file: %w", err)
	}
	n, err := s.ExportTier(ctx, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to write tier file: %w", cerr)
	}
	return n, err
}

// PrintNames prints the Unicode name of every character of text
func (p *Processor) PrintNames(text string) {
	for _, line := range hebrew.DescribeRunes(text) {
		fmt.Fprintln(p.out, line)
	}
}
