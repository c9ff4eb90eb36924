// Package tui implements the interactive dashboard for watching a
// cross-validated sequence calculation run.
package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kugelrund/oeis-A300793/internal/config"
	apperrors "github.com/kugelrund/oeis-A300793/internal/errors"
	"github.com/kugelrund/oeis-A300793/internal/format"
	"github.com/kugelrund/oeis-A300793/internal/orchestration"
	"github.com/kugelrund/oeis-A300793/internal/sequence"
	"github.com/kugelrund/oeis-A300793/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	maxLogLines   = 200
	visibleLogMin = 4
	tickInterval  = 500 * time.Millisecond
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx         context.Context
	cancel      context.CancelFunc
	calculators []sequence.Calculator
	generation  uint64
	done        bool
	exitCode    int
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	keymap      KeyMap
	help        help.Model
	spin        spinner.Model
	progressBar progress.Model

	ExecutionState

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	version   string

	width  int
	height int
	paused bool

	startTime time.Time
	endTime   time.Time

	logs   []string
	scroll int

	avgProgress float64
	eta         time.Duration
	cpu         float64
	mem         float64
	load1       float64
	memStats    MemStatsMsg

	terms   []sequence.IndexedTerm
	fastest orchestration.CalculationResult
	errText string
}

// NewModel creates a new dashboard model.
func NewModel(parentCtx context.Context, calculators []sequence.Calculator, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	pb := progress.New(progress.WithDefaultGradient())

	m := Model{
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		spin:        sp,
		progressBar: pb,
		ExecutionState: ExecutionState{
			ctx:         ctx,
			cancel:      cancel,
			calculators: calculators,
			exitCode:    apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
		version:   version,
		startTime: time.Now(),
	}
	m.addLog(fmt.Sprintf("computing a(1)..a(%d) with %d formulas, timeout %s",
		cfg.Count, len(calculators), cfg.Timeout))
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		tickCmd(),
		startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progressBar.Width = max(10, msg.Width-20)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ProgressMsg:
		if !m.paused {
			m.avgProgress = msg.AverageProgress
			m.eta = msg.ETA
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ComparisonResultsMsg:
		for _, res := range msg.Results {
			if res.Err != nil {
				m.addLog(logErrorStyle.Render(fmt.Sprintf("%s failed: %v", res.Name, res.Err)))
			} else {
				m.addLog(logSuccessStyle.Render(fmt.Sprintf("%s finished in %s (%d terms)",
					res.Name, format.FormatExecutionDuration(res.Duration), len(res.Terms))))
			}
		}
		return m, nil

	case TermsMsg:
		m.terms = msg.Terms
		m.fastest = msg.Fastest
		m.addLog(logSuccessStyle.Render("all formulas agree on every term"))
		return m, nil

	case ErrorMsg:
		m.errText = msg.Err.Error()
		m.addLog(logErrorStyle.Render("error: " + m.errText))
		m.done = true
		m.endTime = time.Now()
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.memStats = msg
		return m, nil

	case SysStatsMsg:
		m.cpu = msg.CPUPercent
		m.mem = msg.MemPercent
		m.load1 = msg.Load1
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous calculation
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.avgProgress = 1.0
		m.endTime = time.Now()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from previous calculation
		}
		m.done = true
		m.endTime = time.Now()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Restart):
		if m.cancel != nil {
			m.cancel()
		}

		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.logs = nil
		m.scroll = 0
		m.terms = nil
		m.errText = ""
		m.avgProgress = 0
		m.eta = 0
		m.done = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess
		m.startTime = time.Now()
		m.endTime = time.Time{}
		m.addLog("restarted")

		return m, tea.Batch(
			tickCmd(),
			startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up):
		if m.scroll > 0 {
			m.scroll--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.scroll < max(0, len(m.logs)-m.visibleLogLines()) {
			m.scroll++
		}
		return m, nil
	}

	return m, nil
}

// addLog appends a timestamped line to the log, dropping the oldest entries
// beyond maxLogLines.
func (m *Model) addLog(line string) {
	stamped := logTimeStyle.Render(time.Now().Format("15:04:05")) + " " + line
	m.logs = append(m.logs, stamped)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
	m.scroll = max(0, len(m.logs)-m.visibleLogLines())
}

// visibleLogLines returns how many log lines fit in the logs panel.
func (m Model) visibleLogLines() int {
	// header + progress + metrics + footer overhead
	h := m.height - 12
	if h < visibleLogMin {
		h = visibleLogMin
	}
	return h
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.viewHeader()
	progressLine := m.viewProgress()
	metrics := m.viewMetrics()
	logs := m.viewLogs()
	terms := m.viewTerms()
	footer := m.help.View(m.keymap)

	return lipgloss.JoinVertical(lipgloss.Left, header, progressLine, metrics, logs, terms, footer)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("A300793 Monitor")
	if m.version != "" && m.version != "dev" {
		title += titleStyle.Render(" " + m.version)
	}

	var elapsed time.Duration
	if !m.endTime.IsZero() {
		elapsed = m.endTime.Sub(m.startTime)
	} else {
		elapsed = time.Since(m.startTime)
	}

	var status string
	switch {
	case m.errText != "":
		status = statusErrorStyle.Render("ERROR")
	case m.done:
		status = statusDoneStyle.Render("DONE")
	case m.paused:
		status = statusPausedStyle.Render("PAUSED")
	default:
		status = statusRunningStyle.Render(m.spin.View() + "RUNNING")
	}

	line := fmt.Sprintf("%s | %s | %s", title,
		elapsedStyle.Render("Elapsed: "+format.FormatExecutionDuration(elapsed)), status)
	return headerStyle.Width(m.width).Render(line)
}

func (m Model) viewProgress() string {
	bar := m.progressBar.ViewAs(m.avgProgress)
	return fmt.Sprintf(" %s ETA: %s", bar, format.FormatETA(m.eta))
}

func (m Model) viewMetrics() string {
	row := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s   %s %d   %s %d",
		metricLabelStyle.Render("CPU"), metricValueStyle.Render(fmt.Sprintf("%.1f%%", m.cpu)),
		metricLabelStyle.Render("Mem"), metricValueStyle.Render(fmt.Sprintf("%.1f%%", m.mem)),
		metricLabelStyle.Render("Load"), metricValueStyle.Render(fmt.Sprintf("%.2f", m.load1)),
		metricLabelStyle.Render("Heap"), metricValueStyle.Render(format.FormatBytes(m.memStats.Alloc)),
		metricLabelStyle.Render("GC"), m.memStats.NumGC,
		metricLabelStyle.Render("Goroutines"), m.memStats.NumGoroutine)
	return panelStyle.Width(max(0, m.width-2)).Render(row)
}

func (m Model) viewLogs() string {
	visible := m.visibleLogLines()
	start := m.scroll
	if start > len(m.logs) {
		start = len(m.logs)
	}
	end := min(len(m.logs), start+visible)
	body := strings.Join(m.logs[start:end], "\n")
	return panelStyle.Width(max(0, m.width-2)).Render(body)
}

func (m Model) viewTerms() string {
	if len(m.terms) == 0 {
		return ""
	}
	shown := m.terms
	const maxShown = 5
	if len(shown) > maxShown {
		shown = shown[len(shown)-maxShown:]
	}
	lines := make([]string, 0, len(shown)+1)
	lines = append(lines, logFormulaStyle.Render(fmt.Sprintf("fastest: %s (%s)",
		m.fastest.Name, format.FormatExecutionDuration(m.fastest.Duration))))
	for _, term := range shown {
		lines = append(lines, fmt.Sprintf("a(%d)=%s", term.Index, term.Value))
	}
	return panelStyle.Width(max(0, m.width-2)).Render(strings.Join(lines, "\n"))
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, calculators []sequence.Calculator, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, calculators, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startCalculationCmd returns a tea.Cmd that launches the orchestration.
func startCalculationCmd(ref *programRef, ctx context.Context, calculators []sequence.Calculator, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteCalculations(ctx, calculators, cfg.Count, progressReporter, io.Discard)
		presOpts := orchestration.PresentationOptions{
			Count:   cfg.Count,
			Verbose: cfg.Verbose,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, io.Discard)

		return CalculationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
			Load1:      s.Load1,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
