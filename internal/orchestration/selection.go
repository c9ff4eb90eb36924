package orchestration

import (
	"github.com/kugelrund/oeis-A300793/internal/sequence"
)

// GetCalculatorsToRun determines which formulas should be executed based on
// the algorithm selection. Returns calculators in alphabetically sorted order
// for consistent, reproducible behavior.
//
// With "all", every registered formula runs and their results are
// cross-validated; a single formula key runs just that one.
func GetCalculatorsToRun(algo string, factory sequence.CalculatorFactory) []sequence.Calculator {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		calculators := make([]sequence.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []sequence.Calculator{calc}
	}
	return nil
}
