package orchestration

import (
	"testing"

	"github.com/kugelrund/oeis-A300793/internal/progress"
)

func TestNewProgressAggregator_Positive(t *testing.T) {
	agg := NewProgressAggregator(3)
	if agg == nil {
		t.Fatal("expected non-nil aggregator for numCalculators=3")
	}
	if agg.NumCalculators() != 3 {
		t.Errorf("expected NumCalculators()=3, got %d", agg.NumCalculators())
	}
	if !agg.IsMultiCalculator() {
		t.Error("expected IsMultiCalculator()=true for 3 calculators")
	}
}

func TestNewProgressAggregator_Single(t *testing.T) {
	agg := NewProgressAggregator(1)
	if agg == nil {
		t.Fatal("expected non-nil aggregator for numCalculators=1")
	}
	if agg.IsMultiCalculator() {
		t.Error("expected IsMultiCalculator()=false for 1 calculator")
	}
}

func TestNewProgressAggregator_NonPositive(t *testing.T) {
	if agg := NewProgressAggregator(0); agg != nil {
		t.Error("expected nil aggregator for numCalculators=0")
	}
	if agg := NewProgressAggregator(-1); agg != nil {
		t.Error("expected nil aggregator for numCalculators=-1")
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	agg := NewProgressAggregator(2)

	ap := agg.Update(progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5})
	if ap.CalculatorIndex != 0 {
		t.Errorf("expected CalculatorIndex=0, got %d", ap.CalculatorIndex)
	}
	if ap.Value != 0.5 {
		t.Errorf("expected Value=0.5, got %f", ap.Value)
	}
	// Average of [0.5, 0.0] = 0.25
	if ap.AverageProgress != 0.25 {
		t.Errorf("expected AverageProgress=0.25, got %f", ap.AverageProgress)
	}

	ap = agg.Update(progress.ProgressUpdate{CalculatorIndex: 1, Value: 0.5})
	// Average of [0.5, 0.5] = 0.5
	if ap.AverageProgress != 0.5 {
		t.Errorf("expected AverageProgress=0.5, got %f", ap.AverageProgress)
	}
}

func TestProgressAggregator_CalculateAverage(t *testing.T) {
	agg := NewProgressAggregator(2)

	if avg := agg.CalculateAverage(); avg != 0.0 {
		t.Errorf("expected initial average=0.0, got %f", avg)
	}

	agg.Update(progress.ProgressUpdate{CalculatorIndex: 0, Value: 1.0})
	if avg := agg.CalculateAverage(); avg != 0.5 {
		t.Errorf("expected average=0.5 after one update, got %f", avg)
	}
}

func TestDrainChannel(t *testing.T) {
	progressChan := make(chan progress.ProgressUpdate, 4)
	for i := 0; i < 4; i++ {
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 0, Value: float64(i) / 4}
	}
	close(progressChan)

	DrainChannel(progressChan)

	if _, ok := <-progressChan; ok {
		t.Error("channel should be fully drained")
	}
}
