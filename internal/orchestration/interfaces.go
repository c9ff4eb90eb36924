package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/kugelrund/oeis-A300793/internal/progress"
	"github.com/kugelrund/oeis-A300793/internal/sequence"
)

// CalculationResult encapsulates the outcome of running a single formula.
// It serves as the shared domain type between orchestration and presentation layers.
type CalculationResult struct {
	// Name is the identifier of the formula used (e.g., "Proven Recurrence").
	Name string
	// Terms are the computed sequence terms a(1)..a(count). Nil if an error
	// occurred.
	Terms []*big.Int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Count   int
	Verbose bool
}

// ProgressReporter defines the interface for displaying calculation progress.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinner, progress
// bar) while orchestration focuses on coordinating the calculations.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter. It
// drains the progress channel without displaying anything. Useful for quiet
// mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting calculation results.
// This decouples orchestration from presentation concerns, allowing different
// output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-formula comparison summary.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentTerms displays the cross-validated sequence terms.
	PresentTerms(terms []sequence.IndexedTerm, fastest CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
