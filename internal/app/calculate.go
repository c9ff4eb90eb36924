package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/kugelrund/oeis-A300793/internal/cli"
	apperrors "github.com/kugelrund/oeis-A300793/internal/errors"
	"github.com/kugelrund/oeis-A300793/internal/format"
	"github.com/kugelrund/oeis-A300793/internal/logging"
	runmetrics "github.com/kugelrund/oeis-A300793/internal/metrics"
	"github.com/kugelrund/oeis-A300793/internal/orchestration"
	"github.com/kugelrund/oeis-A300793/internal/sequence"
	"github.com/kugelrund/oeis-A300793/internal/server"
	"github.com/kugelrund/oeis-A300793/internal/ui"
)

// runCalculate orchestrates the execution of the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	metrics := a.startMetricsServer(ctx)

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := runmetrics.NewMemoryCollector()
	before := collector.Snapshot()

	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, a.Config.Count, progressReporter, progressOut)

	if a.Config.Verbose && !a.Config.Quiet {
		printMemorySummary(out, runmetrics.Delta(before, collector.Snapshot()))
	}

	if metrics != nil {
		for _, res := range results {
			if res.Err == nil {
				metrics.ObserveCalculation(res.Name, len(res.Terms), res.Duration)
			}
		}
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	exitCode := a.analyzeResultsWithOutput(results, outputCfg, out)

	if metrics != nil {
		switch exitCode {
		case apperrors.ExitSuccess:
			metrics.ObserveRun("success")
		case apperrors.ExitErrorMismatch:
			metrics.ObserveRun("mismatch")
			metrics.ObserveMismatch()
		default:
			metrics.ObserveRun("error")
		}
	}

	return exitCode
}

// startMetricsServer starts the Prometheus endpoint when configured.
// Returns nil when no metrics address is set.
func (a *Application) startMetricsServer(ctx context.Context) *server.Metrics {
	if a.Config.MetricsAddr == "" {
		return nil
	}
	metrics := server.NewMetrics()
	srv := server.NewServer(a.Config.MetricsAddr, metrics, logging.NewDefaultLogger())
	go func() {
		if err := srv.Serve(ctx); err != nil {
			fmt.Fprintf(a.ErrWriter, "metrics server error: %v\n", err)
		}
	}()
	return metrics
}

// printMemorySummary reports heap growth over the run. Big-integer rows make
// memory the dominant cost for large term counts.
func printMemorySummary(out io.Writer, d runmetrics.MemorySnapshot) {
	fmt.Fprintf(out, "\nMemory: heap %s (sys %s), %d GC cycles, %d heap objects\n",
		format.FormatBytes(d.HeapAlloc), format.FormatBytes(d.Sys), d.NumGC, d.HeapObjects)
}

// quietPresenter presents results in quiet mode: no comparison table, no
// banners, just the cross-validated terms. Validation still runs; quiet mode
// silences output, not the term-by-term comparison.
type quietPresenter struct {
	out io.Writer
}

func (quietPresenter) PresentComparisonTable([]orchestration.CalculationResult, io.Writer) {}

func (p quietPresenter) PresentTerms(terms []sequence.IndexedTerm, _ orchestration.CalculationResult, _ orchestration.PresentationOptions, _ io.Writer) {
	cli.DisplayQuietTerms(p.out, terms)
}

func (p quietPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, p.out, nil)
}

// capturingPresenter wraps a ResultPresenter and records the validated terms
// so they can be written to a file after analysis.
type capturingPresenter struct {
	inner   orchestration.ResultPresenter
	terms   []sequence.IndexedTerm
	fastest orchestration.CalculationResult
}

func (c *capturingPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	c.inner.PresentComparisonTable(results, out)
}

func (c *capturingPresenter) PresentTerms(terms []sequence.IndexedTerm, fastest orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	c.terms = terms
	c.fastest = fastest
	c.inner.PresentTerms(terms, fastest, opts, out)
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	presOpts := orchestration.PresentationOptions{
		Count:   a.Config.Count,
		Verbose: a.Config.Verbose,
	}

	var inner orchestration.ResultPresenter
	var errHandler orchestration.ErrorHandler
	analysisOut := out
	if a.Config.Quiet {
		qp := quietPresenter{out: out}
		inner, errHandler = qp, qp
		analysisOut = io.Discard
	} else {
		inner, errHandler = cli.CLIResultPresenter{}, cli.CLIResultPresenter{}
	}

	presenter := &capturingPresenter{inner: inner}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, errHandler, analysisOut)

	if exitCode == apperrors.ExitSuccess && outputCfg.OutputFile != "" {
		if err := cli.WriteTermsToFile(presenter.terms, presenter.fastest.Duration, presenter.fastest.Name, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving terms: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Terms saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}
