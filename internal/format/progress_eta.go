package format

import (
	"fmt"
	"strings"
	"time"
)

// MaxETA caps the estimated time remaining at a value that is still
// meaningful to display. Anything beyond this is noise from a near-zero
// progress rate.
const MaxETA = 24 * time.Hour

// ProgressState encapsulates the aggregated progress of concurrent
// calculations. It maintains the individual progress of each calculator and
// computes the average, which provides a consolidated progress view when
// multiple recurrence engines are running in parallel.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates and initializes a new ProgressState for the given
// number of calculators.
func NewProgressState(numCalculators int) *ProgressState {
	if numCalculators < 0 {
		numCalculators = 0
	}
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records a new progress value for a specific calculator. Updates with
// an out-of-range index are ignored; values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	ps.progresses[index] = value
}

// CalculateAverage computes the average progress across all tracked
// calculators, from 0.0 to 1.0.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCalculators)
}

// etaSmoothingFactor controls the exponential moving average applied to the
// observed progress rate. Lower values react slower but jitter less.
const etaSmoothingFactor = 0.3

// ProgressWithETA extends ProgressState with a smoothed progress rate used to
// estimate the time remaining.
type ProgressWithETA struct {
	*ProgressState

	numCalculators int
	startTime      time.Time
	lastUpdateTime time.Time
	lastProgress   float64
	progressRate   float64 // fraction per second, smoothed
}

// NewProgressWithETA creates a progress tracker with ETA estimation for the
// given number of calculators.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:  NewProgressState(numCalculators),
		numCalculators: numCalculators,
		startTime:      now,
		lastUpdateTime: now,
	}
}

// UpdateWithETA records a progress value and returns the new average progress
// together with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.lastUpdateTime).Seconds()
	if elapsed > 0 && avg > p.lastProgress {
		instantRate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = instantRate
		} else {
			p.progressRate = etaSmoothingFactor*instantRate + (1-etaSmoothingFactor)*p.progressRate
		}
		p.lastUpdateTime = now
		p.lastProgress = avg
	}

	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining based on the smoothed progress
// rate. It returns 0 when no rate has been observed yet, and is capped at
// MaxETA.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > MaxETA {
		eta = MaxETA
	}
	return eta
}

// FormatETA renders an ETA for display. Non-positive values mean the rate is
// not known yet.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar generates a textual progress bar of the given character width.
// The progress value is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatProgressBarWithETA combines a progress bar, a percentage, and an ETA
// into a single display line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
