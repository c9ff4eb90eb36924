package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/kugelrund/oeis-A300793/internal/errors"
	"github.com/kugelrund/oeis-A300793/internal/progress"
	"github.com/kugelrund/oeis-A300793/internal/sequence"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking calculation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracerName identifies this package's spans.
const tracerName = "github.com/kugelrund/oeis-A300793/internal/orchestration"

// ExecuteCalculations runs every given formula concurrently for the same term
// count and collects their results.
//
// It manages the lifecycle of calculation goroutines, collects their results,
// and coordinates the display of progress updates. Each formula gets its own
// trace span so a disagreement or slowdown can be attributed to one engine.
func ExecuteCalculations(ctx context.Context, calculators []sequence.Calculator, count int, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "ExecuteCalculations", trace.WithAttributes(
		attribute.Int("sequence.term_count", count),
		attribute.Int("sequence.num_formulas", len(calculators)),
	))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan progress.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			calcCtx, calcSpan := tracer.Start(ctx, "Compute", trace.WithAttributes(
				attribute.String("sequence.formula", calculator.Name()),
			))
			startTime := time.Now()
			terms, err := calculator.Compute(calcCtx, progressChan, idx, count)
			results[idx] = CalculationResult{
				Name: calculator.Name(), Terms: terms, Duration: time.Since(startTime), Err: err,
			}
			if err != nil {
				calcSpan.SetStatus(codes.Error, err.Error())
			}
			calcSpan.End()
			// Errors are reported per-result; a failing formula must not
			// cancel the others.
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from the formulas and
// generates a summary report.
//
// It sorts the results by execution time, cross-validates the term lists of
// all successful formulas, and displays a comparative table. A disagreement
// between formulas is fatal and maps to its own exit code.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValid == nil {
				firstValid = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No formula could complete the calculation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	validated, err := crossValidateAll(results, firstValid)
	if err != nil {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v\n", err)
		fmt.Fprintf(out, "The conjectured recurrence disagrees with the proven formula; this is a finding, not a transient failure.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All formulas agree on every term.\n")
	presenter.PresentTerms(validated, *firstValid, opts, out)
	return apperrors.ExitSuccess
}

// crossValidateAll compares every successful result against the reference
// term by term and returns the indexed terms on full agreement.
func crossValidateAll(results []CalculationResult, reference *CalculationResult) ([]sequence.IndexedTerm, error) {
	validated := make([]sequence.IndexedTerm, len(reference.Terms))
	for i, term := range reference.Terms {
		validated[i] = sequence.IndexedTerm{Index: i + 1, Value: term}
	}
	for i := range results {
		res := &results[i]
		if res.Err != nil || res == reference {
			continue
		}
		if _, err := sequence.CrossValidate(reference.Name, reference.Terms, res.Name, res.Terms); err != nil {
			return nil, err
		}
	}
	return validated, nil
}
