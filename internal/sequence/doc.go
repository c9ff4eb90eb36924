// Package sequence computes terms of OEIS A300793, where a(n) is the n-th
// derivative of arcsinh(1/x) at x=1 times (-2)^n/sqrt(2) for n >= 1.
// See https://oeis.org/A300793.
//
// Two independent formulas are implemented:
//
//   - the proven recursive formula based on a triangular array of helper
//     coefficients (https://oeis.org/A300793/a300793_2.pdf), and
//   - the three-term linear recurrence proposed by Martin Rubey, which is
//     conjectured but not yet proven to generate the same sequence.
//
// Both engines use exact math/big arithmetic throughout; term values grow
// super-linearly and overflow fixed-width integers even for moderate n.
// CrossValidate compares the two term-by-term, turning any disagreement into
// an error; agreement over a range is the whole point of running both.
package sequence
