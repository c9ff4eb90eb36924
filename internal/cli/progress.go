package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/kugelrund/oeis-A300793/internal/format"
	"github.com/kugelrund/oeis-A300793/internal/orchestration"
	"github.com/kugelrund/oeis-A300793/internal/progress"
)

// DisplayProgress consumes progress updates from the channel and renders a
// spinner with an aggregated progress bar and ETA. It runs until progressChan
// is closed and must be launched in its own goroutine.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	aggregator := orchestration.NewProgressAggregator(numCalculators)
	if aggregator == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	// Shrink the bar on narrow terminals so the line never wraps.
	barWidth := ProgressBarWidth
	if w := terminalWidth(out); w > 0 && w < barWidth+40 {
		barWidth = max(10, w-40)
	}

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(0, 0, barWidth)))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		aggregated := aggregator.Update(update)
		sp.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(
			aggregated.AverageProgress, aggregated.ETA, barWidth)))
	}

	sp.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(
		aggregator.CalculateAverage(), 0, barWidth)))
}
