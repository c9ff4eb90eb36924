package sequence

import (
	"context"
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/kugelrund/oeis-A300793/internal/errors"
	"github.com/kugelrund/oeis-A300793/internal/progress"
)

// knownTerms holds a(1) through a(8), derived by hand from both defining
// formulas (which agree) and cross-checked against https://oeis.org/A300793.
var knownTerms = []int64{1, 3, 13, 75, 561, 5355, 63405, 894915}

// allEngines returns both core recurrence implementations.
func allEngines() []coreCalculator {
	return []coreCalculator{
		ProvenRecurrence{},
		ConjecturedRecurrence{},
	}
}

// computeTerms is a shorthand that runs an engine without progress reporting.
func computeTerms(t *testing.T, engine coreCalculator, count int) []*big.Int {
	t.Helper()
	terms, err := engine.ComputeCore(context.Background(), nil, count)
	if err != nil {
		t.Fatalf("%s: ComputeCore(%d) error: %v", engine.Name(), count, err)
	}
	return terms
}

// TestKnownValues verifies both engines against the hand-derived reference
// terms.
func TestKnownValues(t *testing.T) {
	t.Parallel()
	for _, engine := range allEngines() {
		t.Run(engine.Name(), func(t *testing.T) {
			t.Parallel()
			terms := computeTerms(t, engine, len(knownTerms))
			if len(terms) != len(knownTerms) {
				t.Fatalf("got %d terms, want %d", len(terms), len(knownTerms))
			}
			for i, want := range knownTerms {
				if terms[i].Cmp(big.NewInt(want)) != 0 {
					t.Errorf("a(%d) = %v, want %d", i+1, terms[i], want)
				}
			}
		})
	}
}

// TestZeroCount verifies both engines return an empty sequence for count 0.
func TestZeroCount(t *testing.T) {
	t.Parallel()
	for _, engine := range allEngines() {
		if terms := computeTerms(t, engine, 0); len(terms) != 0 {
			t.Errorf("%s: ComputeCore(0) = %v, want empty", engine.Name(), terms)
		}
	}
}

// TestConjecturedSeeds verifies the base cases below the recurrence kick-in.
func TestConjecturedSeeds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		count int
		want  []int64
	}{
		{1, []int64{1}},
		{2, []int64{1, 3}},
		{3, []int64{1, 3, 13}},
	}
	for _, tt := range tests {
		terms := computeTerms(t, ConjecturedRecurrence{}, tt.count)
		if len(terms) != len(tt.want) {
			t.Fatalf("count %d: got %d terms, want %d", tt.count, len(terms), len(tt.want))
		}
		for i, want := range tt.want {
			if terms[i].Cmp(big.NewInt(want)) != 0 {
				t.Errorf("count %d: a(%d) = %v, want %d", tt.count, i+1, terms[i], want)
			}
		}
	}
}

// TestEnginesAgree cross-checks the two formulas term by term over a range
// large enough to exercise many generations of the helper array.
func TestEnginesAgree(t *testing.T) {
	t.Parallel()
	const count = 50
	proven := computeTerms(t, ProvenRecurrence{}, count)
	conjectured := computeTerms(t, ConjecturedRecurrence{}, count)

	for i := range proven {
		if proven[i].Cmp(conjectured[i]) != 0 {
			t.Errorf("formulas disagree at a(%d): %v vs %v", i+1, proven[i], conjectured[i])
		}
	}
}

// TestComputeCancellation verifies engines honor context cancellation.
func TestComputeCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, engine := range allEngines() {
		if _, err := engine.ComputeCore(ctx, nil, 100); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", engine.Name(), err)
		}
	}
}

// TestCalculatorValidation verifies the wrapper rejects negative counts with
// a ValidationError, per the input error contract.
func TestCalculatorValidation(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(ProvenRecurrence{})

	_, err := calc.Compute(context.Background(), nil, 0, -1)
	var ve apperrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if ve.Field != "count" {
		t.Errorf("ValidationError.Field = %q, want %q", ve.Field, "count")
	}
}

// TestCalculatorProgress verifies the wrapper reports terminal progress and
// tags updates with the calculator index.
func TestCalculatorProgress(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(ConjecturedRecurrence{})
	progressChan := make(chan progress.ProgressUpdate, 256)

	if _, err := calc.Compute(context.Background(), progressChan, 2, 20); err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	close(progressChan)

	var last progress.ProgressUpdate
	seen := 0
	for update := range progressChan {
		if update.CalculatorIndex != 2 {
			t.Errorf("CalculatorIndex = %d, want 2", update.CalculatorIndex)
		}
		last = update
		seen++
	}
	if seen == 0 {
		t.Fatal("no progress updates received")
	}
	if last.Value != 1.0 {
		t.Errorf("final progress = %f, want 1.0", last.Value)
	}
}

// TestCalculatorWrapsEngineErrors verifies engine failures surface as
// CalculationError while preserving the cause.
func TestCalculatorWrapsEngineErrors(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calc := NewCalculator(ProvenRecurrence{})
	_, err := calc.Compute(ctx, nil, 0, 10)

	var ce apperrors.CalculationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want CalculationError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error chain should contain context.Canceled, got %v", err)
	}
}

// TestDefaultFactory verifies registration, lookup, and ordering.
func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	keys := factory.List()
	wantAtLeast := map[string]bool{"proven": false, "conjectured": false}
	for _, k := range keys {
		if _, ok := wantAtLeast[k]; ok {
			wantAtLeast[k] = true
		}
	}
	for k, found := range wantAtLeast {
		if !found {
			t.Errorf("List() = %v, missing %q", keys, k)
		}
	}

	for _, k := range keys {
		calc, err := factory.Get(k)
		if err != nil {
			t.Errorf("Get(%q) error: %v", k, err)
		}
		if calc == nil || calc.Name() == "" {
			t.Errorf("Get(%q) returned invalid calculator", k)
		}
	}

	if len(factory.GetAll()) != len(keys) {
		t.Errorf("GetAll() length %d != List() length %d", len(factory.GetAll()), len(keys))
	}

	_, err := factory.Get("bogus")
	var ce apperrors.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("Get(bogus) error = %v, want ConfigError", err)
	}
}

// TestValidateCount covers the count validation boundary.
func TestValidateCount(t *testing.T) {
	t.Parallel()
	if err := ValidateCount(0); err != nil {
		t.Errorf("ValidateCount(0) = %v, want nil", err)
	}
	if err := ValidateCount(10); err != nil {
		t.Errorf("ValidateCount(10) = %v, want nil", err)
	}
	if err := ValidateCount(-5); err == nil {
		t.Error("ValidateCount(-5) should fail")
	}
}
