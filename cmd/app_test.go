package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/folioquant/folio"
)

// pointFiles writes input files into a temp dir and points the global
// file flags at them for the duration of the test.
func pointFiles(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	targets := map[string]*string{
		"holdings.json":  holdingsFile,
		"trades.json":    tradesFile,
		"prices.json":    pricesFile,
		"dividends.json": dividendsFile,
		"rates.json":     ratesFile,
	}
	for name, flag := range targets {
		old := *flag
		*flag = filepath.Join(dir, name)
		t.Cleanup(func() { *flag = old })
		if content, ok := files[name]; ok {
			if err := os.WriteFile(*flag, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestLoadBook(t *testing.T) {
	pointFiles(t, map[string]string{
		"trades.json": `[
		  {"symbol":"","tradeType":"deposit","currency":"USD","totalAmount":1000,"tradeDate":"2024-01-02"},
		  {"assetType":"stock","symbol":"AAPL","tradeType":"buy","currency":"USD",
		   "quantity":"10","price":100,"totalAmount":1000,"tradeDate":"2024-01-03"}
		]`,
		"prices.json": `{"AAPL":[{"date":"2024-01-03","close":100},{"date":"2024-01-04","close":110}]}`,
		"rates.json":  `{"reporting":"USD","rates":{"USD":1}}`,
	})

	b, err := loadBook(folio.NewDate(2024, time.January, 4))
	if err != nil {
		t.Fatalf("loadBook() error = %v", err)
	}
	if b.reporting != "USD" {
		t.Errorf("reporting = %q, want USD", b.reporting)
	}
	if len(b.history) != 3 {
		t.Fatalf("history length = %d, want 3", len(b.history))
	}
	last := b.history[len(b.history)-1]
	if last.Value != 1100 {
		t.Errorf("final value = %v, want 1100", last.Value)
	}
}

func TestLoadBook_MissingOptionalFiles(t *testing.T) {
	pointFiles(t, map[string]string{
		"trades.json": `[{"symbol":"","tradeType":"deposit","currency":"EUR","totalAmount":500,"tradeDate":"2024-01-02"}]`,
	})

	b, err := loadBook(folio.NewDate(2024, time.January, 2))
	if err != nil {
		t.Fatalf("loadBook() error = %v", err)
	}
	// no rates file: reporting falls back to the ledger currency
	if b.reporting != "EUR" {
		t.Errorf("reporting = %q, want EUR", b.reporting)
	}
	if len(b.history) != 1 || b.history[0].Value != 500 {
		t.Errorf("history = %+v", b.history)
	}
}

func TestLoadHoldings_Missing(t *testing.T) {
	pointFiles(t, nil)
	if _, err := LoadHoldings(); err == nil {
		t.Error("LoadHoldings succeeded without a holdings file")
	}
}

func TestMarkdownToHTML(t *testing.T) {
	html, err := markdownToHTML("summary", "# Title\n\nSome **bold** text.\n")
	if err != nil {
		t.Fatalf("markdownToHTML() error = %v", err)
	}
	for _, want := range []string{"<title>summary</title>", "<h1", "<strong>bold</strong>"} {
		if !bytes.Contains(html, []byte(want)) {
			t.Errorf("HTML missing %q:\n%s", want, html)
		}
	}
}
