package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/kugelrund/oeis-A300793/internal/config"
	"github.com/kugelrund/oeis-A300793/internal/sequence"
	"github.com/kugelrund/oeis-A300793/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the number of terms, the timeout, and environment details.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %sa(1)..a(%d)%s of OEIS A300793 with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Count, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single formula vs
// cross-validated comparison).
func PrintExecutionMode(calculators []sequence.Calculator, out io.Writer) {
	var modeDesc string
	if len(calculators) > 1 {
		modeDesc = "Parallel cross-validation of all formulas"
	} else {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s formula",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
