//go:build gmp

package sequence

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"

	"github.com/kugelrund/oeis-A300793/internal/progress"
)

// GMPConjecturedRecurrence evaluates the conjectured three-term recurrence on
// GMP-backed integers instead of math/big. It exists as an independent
// arithmetic backend: a disagreement between this engine and the math/big
// ones would point at the arithmetic layer rather than the formulas.
//
// Requires cgo and libgmp; built only under the gmp tag.
type GMPConjecturedRecurrence struct{}

// Name returns the display name of the formula.
func (GMPConjecturedRecurrence) Name() string { return "Conjectured Recurrence (GMP)" }

// ComputeCore calculates the first count terms. The recurrence and index
// correspondence are identical to ConjecturedRecurrence.ComputeCore.
func (GMPConjecturedRecurrence) ComputeCore(ctx context.Context, report progress.ProgressCallback, count int) ([]*big.Int, error) {
	terms := make([]*gmp.Int, 0, max(count, 0))
	for i := 0; i < len(conjecturedSeeds) && i < count; i++ {
		terms = append(terms, gmp.NewInt(conjecturedSeeds[i]))
	}

	reporter := progress.NewStepReporter(report, count, 100)
	reporter.Step(len(terms))

	for i := 3; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		im1 := gmp.NewInt(int64(i - 1))

		c1 := new(gmp.Int).Mul(im1, im1)
		c1.Mul(c1, gmp.NewInt(int64(i-2)))
		c1.Mul(c1, gmp.NewInt(4))
		c1.Mul(c1, terms[i-3])

		c2 := new(gmp.Int).Mul(gmp.NewInt(int64(2*(3*i-2))), im1)
		c2.Mul(c2, terms[i-2])

		c3 := new(gmp.Int).Mul(gmp.NewInt(int64(4*i-1)), terms[i-1])

		term := c1.Sub(c1, c2)
		term.Add(term, c3)
		terms = append(terms, term)

		reporter.Step(i + 1)
	}

	// Convert back to math/big so every backend exposes the same result type.
	converted := make([]*big.Int, len(terms))
	for i, v := range terms {
		converted[i] = new(big.Int).SetBytes(v.Bytes())
		if v.Sign() < 0 {
			converted[i].Neg(converted[i])
		}
	}
	return converted, nil
}

// gmpCalculators registers the GMP backend under the "conjectured-gmp" key.
func gmpCalculators() map[string]Calculator {
	return map[string]Calculator{
		"conjectured-gmp": NewCalculator(GMPConjecturedRecurrence{}),
	}
}
