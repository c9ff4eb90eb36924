package sequence

import (
	"context"
	"math/big"

	"github.com/kugelrund/oeis-A300793/internal/progress"
)

// ProvenRecurrence computes sequence terms with the proven recursive formula:
// it maintains one row of the triangular helper array b per generation and
// derives a(n) = (-1)^n · Σ b(n,:) before advancing the row.
//
// Time complexity is O(count²) since the row grows by one entry per
// generation; only the current row is held, so space is O(count).
type ProvenRecurrence struct{}

// Name returns the display name of the formula.
func (ProvenRecurrence) Name() string { return "Proven Recurrence (triangular rows)" }

// ComputeCore calculates the first count terms.
//
// The context is checked once per generation, so a timeout or interrupt
// cancels the quadratic computation promptly. Progress is the fraction of
// row-update work completed, which grows quadratically with the generation.
func (ProvenRecurrence) ComputeCore(ctx context.Context, report progress.ProgressCallback, count int) ([]*big.Int, error) {
	terms := make([]*big.Int, 0, max(count, 0))
	row := FirstRow()

	totalWork := count * (count + 1) / 2
	doneWork := 0

	for n := 1; n <= count; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		term := row.Sum()
		if n%2 != 0 {
			term.Neg(term)
		}
		terms = append(terms, term)

		row = NextRow(row)

		doneWork += n
		if report != nil {
			report(float64(doneWork) / float64(totalWork))
		}
	}
	return terms, nil
}
