// Package orchestration coordinates concurrent execution of the sequence
// formulas and cross-validates their results term by term. It decouples
// business logic from presentation via the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
