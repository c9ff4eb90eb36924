// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayTerms], [DisplayQuietTerms], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatTerm].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteTermsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kugelrund/oeis-A300793/internal/format"
	"github.com/kugelrund/oeis-A300793/internal/sequence"
	"github.com/kugelrund/oeis-A300793/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the terms (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the terms themselves.
	Quiet bool
	// Verbose shows every term even for large counts.
	Verbose bool
}

// FormatTerm renders a single sequence term as "a(index)=value".
func FormatTerm(term sequence.IndexedTerm) string {
	return fmt.Sprintf("a(%d)=%s", term.Index, term.Value)
}

// DisplayQuietTerms outputs the terms one per line with no decoration,
// suitable for scripting.
func DisplayQuietTerms(out io.Writer, terms []sequence.IndexedTerm) {
	for _, term := range terms {
		fmt.Fprintln(out, FormatTerm(term))
	}
}

// DisplayTerms outputs the cross-validated terms. Long sequences are
// truncated to their first and last TermsDisplayEdges entries unless verbose
// is set; large term values always print in full since each occupies its own
// line.
func DisplayTerms(out io.Writer, terms []sequence.IndexedTerm, verbose bool) {
	if verbose || len(terms) <= TermsDisplayLimit {
		for _, term := range terms {
			fmt.Fprintln(out, FormatTerm(term))
		}
		return
	}

	for _, term := range terms[:TermsDisplayEdges] {
		fmt.Fprintln(out, FormatTerm(term))
	}
	fmt.Fprintf(out, "%s... %d terms omitted (use -v to show all) ...%s\n",
		ui.ColorYellow(), len(terms)-2*TermsDisplayEdges, ui.ColorReset())
	for _, term := range terms[len(terms)-TermsDisplayEdges:] {
		fmt.Fprintln(out, FormatTerm(term))
	}
}

// WriteTermsToFile writes the cross-validated terms to a file, with a header
// describing the run.
func WriteTermsToFile(terms []sequence.IndexedTerm, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# OEIS A300793\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Formula: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", format.FormatExecutionDuration(duration))
	fmt.Fprintf(file, "# Terms: %d\n", len(terms))
	fmt.Fprintf(file, "\n")

	for _, term := range terms {
		fmt.Fprintln(file, FormatTerm(term))
	}

	return nil
}
