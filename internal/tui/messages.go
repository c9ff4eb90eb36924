package tui

import (
	"time"

	"github.com/kugelrund/oeis-A300793/internal/orchestration"
	"github.com/kugelrund/oeis-A300793/internal/sequence"
)

// Messages passed between the bridge goroutines and the bubbletea model.

// ProgressMsg carries one aggregated progress update.
type ProgressMsg struct {
	CalculatorIndex int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the per-formula comparison results.
type ComparisonResultsMsg struct {
	Results []orchestration.CalculationResult
}

// TermsMsg carries the cross-validated sequence terms.
type TermsMsg struct {
	Terms   []sequence.IndexedTerm
	Fastest orchestration.CalculationResult
}

// ErrorMsg carries a fatal calculation error.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives the periodic refresh of elapsed time and system stats.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	Load1      float64
}

// MemStatsMsg carries runtime memory statistics.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	NumGoroutine int
}

// CalculationCompleteMsg signals that orchestration finished.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the calculation context ended.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
