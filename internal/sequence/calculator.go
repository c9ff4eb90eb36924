package sequence

import (
	"context"
	"math/big"
	"sort"

	apperrors "github.com/kugelrund/oeis-A300793/internal/errors"
	"github.com/kugelrund/oeis-A300793/internal/progress"
)

// Calculator is the interface the orchestration layer works against. A
// calculator produces the first count sequence terms and streams progress
// updates tagged with its index onto progressChan (which may be nil).
type Calculator interface {
	// Name returns a human-readable identifier for the formula.
	Name() string
	// Compute returns the first count terms of the sequence.
	Compute(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, count int) ([]*big.Int, error)
}

// coreCalculator is the minimal surface a recurrence engine implements. The
// SeqCalculator wrapper adds input validation and progress plumbing so the
// engines stay pure iteration loops.
type coreCalculator interface {
	Name() string
	ComputeCore(ctx context.Context, report progress.ProgressCallback, count int) ([]*big.Int, error)
}

// SeqCalculator adapts a coreCalculator to the Calculator interface.
type SeqCalculator struct {
	core coreCalculator
}

// NewCalculator wraps a recurrence engine with count validation and
// channel-based progress reporting.
func NewCalculator(core coreCalculator) Calculator {
	return &SeqCalculator{core: core}
}

// Name returns the wrapped engine's name.
func (c *SeqCalculator) Name() string { return c.core.Name() }

// Compute validates count, runs the engine, and guarantees a final 1.0
// progress report on success.
func (c *SeqCalculator) Compute(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, count int) ([]*big.Int, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}

	report := progress.NewChannelCallback(progressChan, index)
	terms, err := c.core.ComputeCore(ctx, report, count)
	if err != nil {
		return nil, apperrors.CalculationError{Cause: err}
	}
	report(1.0)
	return terms, nil
}

// ValidateCount rejects negative term counts. Zero is valid and yields an
// empty result.
func ValidateCount(count int) error {
	if count < 0 {
		return apperrors.ValidationError{
			Field:   "count",
			Message: "number of terms must be non-negative",
		}
	}
	return nil
}

// CalculatorFactory provides access to the registered formula implementations
// by key.
type CalculatorFactory interface {
	// Get returns the calculator registered under key.
	Get(key string) (Calculator, error)
	// List returns the registered keys in sorted order.
	List() []string
	// GetAll returns all registered calculators, ordered by key.
	GetAll() []Calculator
}

type defaultFactory struct {
	calculators map[string]Calculator
}

// NewDefaultFactory creates a factory with both recurrence formulas
// registered. Builds with the gmp tag additionally register the GMP-backed
// variant of the conjectured formula.
func NewDefaultFactory() CalculatorFactory {
	f := &defaultFactory{calculators: map[string]Calculator{
		"proven":      NewCalculator(ProvenRecurrence{}),
		"conjectured": NewCalculator(ConjecturedRecurrence{}),
	}}
	for key, calc := range gmpCalculators() {
		f.calculators[key] = calc
	}
	return f
}

// Get returns the calculator registered under key.
func (f *defaultFactory) Get(key string) (Calculator, error) {
	calc, ok := f.calculators[key]
	if !ok {
		return nil, apperrors.NewConfigError("unknown algorithm %q (available: %v)", key, f.List())
	}
	return calc, nil
}

// List returns the registered keys in sorted order.
func (f *defaultFactory) List() []string {
	keys := make([]string, 0, len(f.calculators))
	for k := range f.calculators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns all registered calculators, ordered by key.
func (f *defaultFactory) GetAll() []Calculator {
	keys := f.List()
	calculators := make([]Calculator, 0, len(keys))
	for _, k := range keys {
		calculators = append(calculators, f.calculators[k])
	}
	return calculators
}
