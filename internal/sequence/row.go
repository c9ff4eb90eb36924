package sequence

import "math/big"

// Row is one row of the triangular array of helper coefficients b used by the
// proven recursive formula. The row at generation n has exactly n entries.
type Row []*big.Int

// FirstRow returns the generation-1 row, [-1].
func FirstRow() Row {
	return Row{big.NewInt(-1)}
}

// NextRow calculates the next row of b, given a current row of b.
//
// For a row of length n it produces a row of length n+1:
//
//	next[0] = -row[0]·n
//	next[j] = row[j]·(2j-n) + row[j-1]·(2j-3n-1)   for 1 <= j <= n-1
//	next[n] = row[n-1]·(2n-3n-1)
//
// The input row is never mutated; a freshly allocated row is returned.
func NextRow(row Row) Row {
	n := len(row)
	if n == 0 {
		return Row{}
	}

	next := make(Row, n+1)
	next[0] = new(big.Int).Mul(row[0], big.NewInt(int64(-n)))
	for j := 1; j < n; j++ {
		left := new(big.Int).Mul(row[j], big.NewInt(int64(2*j-n)))
		right := new(big.Int).Mul(row[j-1], big.NewInt(int64(2*j-3*n-1)))
		next[j] = left.Add(left, right)
	}
	next[n] = new(big.Int).Mul(row[n-1], big.NewInt(int64(2*n-3*n-1)))
	return next
}

// Sum returns the sum of all entries as a freshly allocated integer.
func (r Row) Sum() *big.Int {
	sum := new(big.Int)
	for _, v := range r {
		sum.Add(sum, v)
	}
	return sum
}
