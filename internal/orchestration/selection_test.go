package orchestration

import (
	"testing"

	"github.com/kugelrund/oeis-A300793/internal/sequence"
)

func TestGetCalculatorsToRun_All(t *testing.T) {
	t.Parallel()
	factory := sequence.NewDefaultFactory()

	calculators := GetCalculatorsToRun("all", factory)
	if len(calculators) != len(factory.List()) {
		t.Errorf("got %d calculators, want %d", len(calculators), len(factory.List()))
	}
}

func TestGetCalculatorsToRun_Single(t *testing.T) {
	t.Parallel()
	factory := sequence.NewDefaultFactory()

	calculators := GetCalculatorsToRun("proven", factory)
	if len(calculators) != 1 {
		t.Fatalf("got %d calculators, want 1", len(calculators))
	}
	if calculators[0].Name() == "" {
		t.Error("calculator name should not be empty")
	}
}

func TestGetCalculatorsToRun_Unknown(t *testing.T) {
	t.Parallel()
	factory := sequence.NewDefaultFactory()

	if calculators := GetCalculatorsToRun("bogus", factory); calculators != nil {
		t.Errorf("got %v, want nil for unknown algorithm", calculators)
	}
}
