package cli

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kugelrund/oeis-A300793/internal/sequence"
	"github.com/kugelrund/oeis-A300793/internal/ui"
)

func init() {
	// Deterministic output regardless of the environment's terminal.
	ui.SetTheme(ui.NoColorTheme)
}

// indexedTerms builds a term slice with 1-based indices from int64 values.
func indexedTerms(values ...int64) []sequence.IndexedTerm {
	terms := make([]sequence.IndexedTerm, len(values))
	for i, v := range values {
		terms[i] = sequence.IndexedTerm{Index: i + 1, Value: big.NewInt(v)}
	}
	return terms
}

func TestFormatTerm(t *testing.T) {
	term := sequence.IndexedTerm{Index: 4, Value: big.NewInt(75)}
	if got := FormatTerm(term); got != "a(4)=75" {
		t.Errorf("FormatTerm = %q, want %q", got, "a(4)=75")
	}
}

func TestDisplayQuietTerms(t *testing.T) {
	var buf strings.Builder
	DisplayQuietTerms(&buf, indexedTerms(1, 3, 13))

	want := "a(1)=1\na(2)=3\na(3)=13\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestDisplayTermsShort(t *testing.T) {
	var buf strings.Builder
	DisplayTerms(&buf, indexedTerms(1, 3, 13, 75), false)

	out := buf.String()
	for _, line := range []string{"a(1)=1", "a(4)=75"} {
		if !strings.Contains(out, line) {
			t.Errorf("output should contain %q:\n%s", line, out)
		}
	}
	if strings.Contains(out, "omitted") {
		t.Errorf("short output should not be truncated:\n%s", out)
	}
}

func TestDisplayTermsTruncated(t *testing.T) {
	values := make([]int64, 30)
	for i := range values {
		values[i] = int64(i + 1)
	}

	var buf strings.Builder
	DisplayTerms(&buf, indexedTerms(values...), false)

	out := buf.String()
	if !strings.Contains(out, "omitted") {
		t.Errorf("long output should be truncated:\n%s", out)
	}
	if !strings.Contains(out, "a(1)=") || !strings.Contains(out, "a(30)=") {
		t.Errorf("truncated output should keep both edges:\n%s", out)
	}
	if strings.Contains(out, "a(15)=") {
		t.Errorf("middle terms should be omitted:\n%s", out)
	}
}

func TestDisplayTermsVerboseShowsAll(t *testing.T) {
	values := make([]int64, 30)
	for i := range values {
		values[i] = int64(i + 1)
	}

	var buf strings.Builder
	DisplayTerms(&buf, indexedTerms(values...), true)

	out := buf.String()
	if strings.Contains(out, "omitted") {
		t.Errorf("verbose output should not be truncated:\n%s", out)
	}
	if !strings.Contains(out, "a(15)=") {
		t.Errorf("verbose output should include middle terms:\n%s", out)
	}
}

func TestWriteTermsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "terms.txt")
	cfg := OutputConfig{OutputFile: path}

	if err := WriteTermsToFile(indexedTerms(1, 3, 13), 42*time.Millisecond, "Proven Recurrence", cfg); err != nil {
		t.Fatalf("WriteTermsToFile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	content := string(data)
	for _, want := range []string{"# OEIS A300793", "# Formula: Proven Recurrence", "# Terms: 3", "a(3)=13"} {
		if !strings.Contains(content, want) {
			t.Errorf("file should contain %q:\n%s", want, content)
		}
	}
}

func TestWriteTermsToFileNoPath(t *testing.T) {
	if err := WriteTermsToFile(indexedTerms(1), time.Second, "x", OutputConfig{}); err != nil {
		t.Errorf("empty OutputFile should be a no-op, got %v", err)
	}
}
