package sequence

import (
	"context"
	"math/big"

	apperrors "github.com/kugelrund/oeis-A300793/internal/errors"
)

// IndexedTerm pairs a 1-based sequence index with its value, the shape in
// which validated terms are reported to callers.
type IndexedTerm struct {
	// Index is the 1-based term index n.
	Index int
	// Value is a(n).
	Value *big.Int
}

// ProvenTerms returns the first count terms computed with the proven
// recursive formula. It is a pure convenience wrapper around
// ProvenRecurrence for callers that need neither cancellation nor progress.
func ProvenTerms(count int) ([]*big.Int, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	return ProvenRecurrence{}.ComputeCore(context.Background(), nil, count)
}

// ConjecturedTerms returns the first count terms computed with the
// conjectured three-term recurrence.
func ConjecturedTerms(count int) ([]*big.Int, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	return ConjecturedRecurrence{}.ComputeCore(context.Background(), nil, count)
}

// CrossValidate compares two term lists element by element. On agreement it
// returns the terms paired with their 1-based indices; on any disagreement it
// returns a MismatchError identifying the first offending index. A length
// difference is reported as a mismatch at the first index present in only
// one list.
func CrossValidate(firstName string, first []*big.Int, secondName string, second []*big.Int) ([]IndexedTerm, error) {
	if len(first) != len(second) {
		shorter := min(len(first), len(second))
		return nil, apperrors.MismatchError{
			Index:      shorter + 1,
			FirstName:  firstName,
			SecondName: secondName,
		}
	}

	reported := make([]IndexedTerm, len(first))
	for i := range first {
		if first[i].Cmp(second[i]) != 0 {
			return nil, apperrors.MismatchError{
				Index:      i + 1,
				FirstName:  firstName,
				SecondName: secondName,
				First:      first[i],
				Second:     second[i],
			}
		}
		reported[i] = IndexedTerm{Index: i + 1, Value: first[i]}
	}
	return reported, nil
}

// ValidateAndReport computes the first count terms with both formulas and
// cross-validates them. On success every term is reported as a 1-based
// (index, value) pair; on disagreement the MismatchError is returned and no
// terms are reported. Disagreement is an algorithmic finding, not a transient
// failure, so callers must treat it as fatal rather than retry.
func ValidateAndReport(count int) ([]IndexedTerm, error) {
	proven := ProvenRecurrence{}
	conjectured := ConjecturedRecurrence{}

	provenTerms, err := ProvenTerms(count)
	if err != nil {
		return nil, err
	}
	conjecturedTerms, err := ConjecturedTerms(count)
	if err != nil {
		return nil, err
	}

	return CrossValidate(proven.Name(), provenTerms, conjectured.Name(), conjecturedTerms)
}
