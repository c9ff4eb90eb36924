// Package progress defines the progress reporting primitives shared by the
// sequence engines, the orchestration layer, and the UIs.
package progress

// ProgressUpdate is a single progress notification from a running calculator.
type ProgressUpdate struct {
	// CalculatorIndex identifies which calculator the update belongs to.
	CalculatorIndex int
	// Value is the completion fraction, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives a completion fraction from 0.0 to 1.0.
// Engines call it from their computation loop; implementations must be cheap.
type ProgressCallback func(value float64)

// NewChannelCallback returns a ProgressCallback that forwards updates for the
// given calculator index onto ch. Sends are non-blocking: when the channel
// buffer is full the update is dropped rather than stalling the calculation.
func NewChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return func(float64) {}
	}
	return func(value float64) {
		select {
		case ch <- ProgressUpdate{CalculatorIndex: index, Value: value}:
		default:
		}
	}
}

// StepReporter throttles per-iteration progress reports so that engines with
// many cheap iterations do not flood the channel. It always reports the first
// and last step.
type StepReporter struct {
	report     ProgressCallback
	totalSteps int
	every      int
}

// NewStepReporter creates a reporter for totalSteps iterations that emits at
// most around maxReports updates. A nil callback yields a no-op reporter.
func NewStepReporter(report ProgressCallback, totalSteps, maxReports int) *StepReporter {
	every := 1
	if maxReports > 0 && totalSteps > maxReports {
		every = totalSteps / maxReports
	}
	return &StepReporter{report: report, totalSteps: totalSteps, every: every}
}

// Step reports progress for the completed step number (1-based) when due.
func (s *StepReporter) Step(completed int) {
	if s.report == nil || s.totalSteps <= 0 {
		return
	}
	if completed == s.totalSteps || completed == 1 || completed%s.every == 0 {
		s.report(float64(completed) / float64(s.totalSteps))
	}
}
