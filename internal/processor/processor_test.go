package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/tsachovadia/RapTrainer/internal/cli"
	"github.com/tsachovadia/RapTrainer/internal/dictionary"
	"github.com/tsachovadia/RapTrainer/internal/phonemizer"
	"github.com/tsachovadia/RapTrainer/internal/testutil"
)

func newTestProcessor(t *testing.T) (*Processor, *bytes.Buffer) {
	t.Helper()

	flags := cli.NewFlags()
	flags.StorePath = filepath.Join(t.TempDir(), "history.db")

	var out bytes.Buffer
	ph := phonemizer.New(dictionary.New(nil))
	return New(flags, ph, phonemizer.DefaultOptions(), &out), &out
}

func TestProcessText(t *testing.T) {
	p, out := newTestProcessor(t)

	got, err := p.ProcessText(context.Background(), "  שָׁלוֹם  ")
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}
	if got != "ʃalˈom" {
		t.Errorf("Expected 'ʃalˈom', got '%s'", got)
	}
	if out.String() != "ʃalˈom\n" {
		t.Errorf("Expected printed phonemes, got %q", out.String())
	}
	testutil.AssertFileNotExists(t, p.flags.StorePath)

	if _, err := p.ProcessText(context.Background(), "   "); err == nil {
		t.Error("Expected error for empty text")
	}
}

func TestProcessText_SaveAndHistory(t *testing.T) {
	p, out := newTestProcessor(t)
	p.flags.Save = true
	ctx := context.Background()

	for _, text := range []string{"שָׁלוֹם", "רָחֵל"} {
		if _, err := p.ProcessText(ctx, text); err != nil {
			t.Fatalf("ProcessText failed: %v", err)
		}
	}
	testutil.AssertFileExists(t, p.flags.StorePath)

	out.Reset()
	if err := p.ShowHistory(ctx); err != nil {
		t.Fatalf("ShowHistory failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 history lines, got %d:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "ʁaχˈel") || !strings.Contains(lines[1], "ʃalˈom") {
		t.Errorf("Expected newest first, got:\n%s", out.String())
	}
	if !strings.Contains(lines[0], "placement=vowel schema=modern") {
		t.Errorf("Expected options in history, got %s", lines[0])
	}
}

func TestShowHistory_Empty(t *testing.T) {
	p, out := newTestProcessor(t)
	if err := p.ShowHistory(context.Background()); err != nil {
		t.Fatalf("ShowHistory failed: %v", err)
	}
	if !strings.Contains(out.String(), "No saved results") {
		t.Errorf("Expected empty history message, got %q", out.String())
	}
}

func TestProcessReader(t *testing.T) {
	p, out := newTestProcessor(t)

	err := p.ProcessReader(context.Background(), strings.NewReader("שָׁלוֹם\n\nרָחֵל\n"))
	if err != nil {
		t.Fatalf("ProcessReader failed: %v", err)
	}
	if out.String() != "ʃalˈom\nʁaχˈel\n" {
		t.Errorf("Unexpected output %q", out.String())
	}

	if err := p.ProcessReader(context.Background(), strings.NewReader("\n \n")); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestProcessBatch(t *testing.T) {
	p, out := newTestProcessor(t)
	p.flags.Save = true
	p.flags.BatchFile = testutil.WriteBatchFile(t, t.TempDir(),
		"# sample",
		"שָׁלוֹם = ʃalˈom",
		"רָחֵל = ʁaχˈel",
		"בַּיִת = bajit",
		"לְמַד",
	)

	report, err := p.ProcessBatch(context.Background())
	if err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}
	if len(report.Results) != 4 {
		t.Errorf("Expected 4 results, got %d", len(report.Results))
	}
	if report.Compared != 3 {
		t.Errorf("Expected 3 compared lines, got %d", report.Compared)
	}
	if report.Exact != 2 {
		t.Errorf("Expected 2 exact matches, got %d", report.Exact)
	}

	output := out.String()
	for _, want := range []string{"✓ שָׁלוֹם", "✗ בַּיִת", "line 4", "Exact matches: 2", "=== Batch Summary ==="} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestProcessBatch_Errors(t *testing.T) {
	p, _ := newTestProcessor(t)

	p.flags.BatchFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := p.ProcessBatch(context.Background()); err == nil {
		t.Error("Expected error for missing batch file")
	}

	p.flags.BatchFile = testutil.WriteBatchFile(t, t.TempDir(), "# only comments")
	if _, err := p.ProcessBatch(context.Background()); err == nil {
		t.Error("Expected error for a batch file without entries")
	}
}

func TestExportTier(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.Save = true
	ctx := context.Background()

	p.ProcessText(ctx, "שָׁלוֹם")
	p.ProcessText(ctx, "שָׁלוֹם עוֹלָם")

	dir := t.TempDir()
	path := filepath.Join(dir, "history_gold.json")
	n, err := p.ExportTier(ctx, path)
	if err != nil {
		t.Fatalf("ExportTier failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 exported entry, got %d", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read tier: %v", err)
	}
	testutil.AssertFileContains(t, path, "(/ʃalˈom/)")
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("Tier is not valid JSON: %v", err)
	}

	// The exported tier loads back as a dictionary
	dict, err := dictionary.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if dict.Len() != 1 {
		t.Errorf("Expected 1 dictionary entry, got %d", dict.Len())
	}
	got := phonemizer.New(dict).Phonemize("שָׁלוֹם", phonemizer.DefaultOptions())
	if got != "ʃalˈom" {
		t.Errorf("Expected exported phonemes to round trip, got '%s'", got)
	}
}

func TestExportTier_UnrankedName(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.Save = true
	ctx := context.Background()
	p.ProcessText(ctx, "רָחֵל")

	path := filepath.Join(t.TempDir(), "history.json")
	var n int
	var err error
	_, stderr := testutil.CaptureOutput(t, func() {
		n, err = p.ExportTier(ctx, path)
	})
	if err != nil {
		t.Fatalf("ExportTier failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 exported entry, got %d", n)
	}
	if !strings.Contains(stderr, "Warning: "+path+" has no _bronze, _silver or _gold suffix") {
		t.Errorf("Expected tier name warning, got %q", stderr)
	}
	testutil.AssertFileContains(t, path, "(/ʁaχˈel/)")
}

func TestSetTranscriber(t *testing.T) {
	p, out := newTestProcessor(t)
	mock := &testutil.MockTranscriber{Results: map[string]string{"hello": "həˈloʊ"}}
	p.SetTranscriber(context.Background(), mock)

	if _, err := p.ProcessText(context.Background(), "hello שָׁלוֹם"); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}
	if out.String() != "həˈloʊ ʃalˈom\n" {
		t.Errorf("Expected fallback phonemes, got %q", out.String())
	}
	if mock.CallCount() != 1 {
		t.Errorf("Expected 1 transcriber call, got %d", mock.CallCount())
	}

	// Without a transcriber Latin letters pass through the symbol filter
	p, out = newTestProcessor(t)
	p.SetTranscriber(context.Background(), nil)
	p.ProcessText(context.Background(), "qqq")
	if out.String() != "\n" {
		t.Errorf("Expected unknown symbols dropped, got %q", out.String())
	}
}

func TestPrintNames(t *testing.T) {
	p, out := newTestProcessor(t)
	p.PrintNames("\u05e9\u05c1")

	want := "U+05E9 HEBREW LETTER SHIN\nU+05C1 HEBREW POINT SHIN DOT\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestNewProcessor(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	p, err := NewProcessor(context.Background(), cli.NewFlags())
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	if p.transcriber != nil {
		t.Error("Expected no transcriber by default")
	}
	if p.phonemizer.Dictionary().Len() == 0 {
		t.Error("Expected the embedded dictionary")
	}
	if !strings.HasPrefix(p.storePath, os.Getenv("XDG_STATE_HOME")) {
		t.Errorf("Expected store under the state dir, got %s", p.storePath)
	}
}

func TestNewProcessor_DictionaryDir(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	testutil.WriteTier(t, dir, "words_gold.json", map[string]string{"בית": "בַּ֫יִת"})
	viper.Set(cli.KeyDictionaryDir, dir)

	p, err := NewProcessor(context.Background(), cli.NewFlags())
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	if p.phonemizer.Dictionary().Len() != 1 {
		t.Errorf("Expected 1 entry from the custom dictionary, got %d", p.phonemizer.Dictionary().Len())
	}

	viper.Set(cli.KeyDictionaryDir, filepath.Join(dir, "missing"))
	if _, err := NewProcessor(context.Background(), cli.NewFlags()); err == nil {
		t.Error("Expected error for a missing dictionary directory")
	}
}

func TestNewProcessor_InvalidOptions(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(cli.KeySchema, "unknown")

	if _, err := NewProcessor(context.Background(), cli.NewFlags()); err == nil {
		t.Error("Expected error for an unknown schema")
	}
}

func TestNewProcessor_TranscriberWarning(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	viper.Set(cli.KeyFallbackProvider, "carrier-pigeon")

	var p *Processor
	var err error
	_, stderr := testutil.CaptureOutput(t, func() {
		p, err = NewProcessor(context.Background(), cli.NewFlags())
	})
	if err != nil {
		t.Fatalf("Expected an unknown provider to be non fatal, got %v", err)
	}
	if p.transcriber != nil {
		t.Error("Expected no transcriber")
	}
	if !strings.Contains(stderr, "Warning: Fallback transcriber unavailable") {
		t.Errorf("Expected transcriber warning, got %q", stderr)
	}
}
