package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for terminal output.
// Each field contains an ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the process-wide theme. Color is disabled when noColor is
// true or the NO_COLOR environment variable is set; otherwise the dark or
// light variant is chosen from the terminal background.
func InitTheme(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme(NoColorTheme)
		return
	}
	if lipgloss.HasDarkBackground() {
		SetTheme(DarkTheme)
	} else {
		SetTheme(LightTheme)
	}
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	currentTheme = t
	themeMutex.Unlock()
}

// CurrentTheme returns a copy of the active theme.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// TUITheme carries the lipgloss color roles used by the TUI dashboard.
type TUITheme struct {
	Border  lipgloss.Color
	Bg      lipgloss.Color
	Text    lipgloss.Color
	Accent  lipgloss.Color
	Dim     lipgloss.Color
	Info    lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// GetCurrentTUITheme derives the TUI color roles from the active theme.
func GetCurrentTUITheme() TUITheme {
	if CurrentTheme().Name == "light" {
		return TUITheme{
			Border:  lipgloss.Color("240"),
			Bg:      lipgloss.Color(""),
			Text:    lipgloss.Color("235"),
			Accent:  lipgloss.Color("27"),
			Dim:     lipgloss.Color("245"),
			Info:    lipgloss.Color("54"),
			Success: lipgloss.Color("28"),
			Warning: lipgloss.Color("130"),
			Error:   lipgloss.Color("124"),
		}
	}
	return TUITheme{
		Border:  lipgloss.Color("240"),
		Bg:      lipgloss.Color(""),
		Text:    lipgloss.Color("252"),
		Accent:  lipgloss.Color("39"),
		Dim:     lipgloss.Color("245"),
		Info:    lipgloss.Color("141"),
		Success: lipgloss.Color("82"),
		Warning: lipgloss.Color("220"),
		Error:   lipgloss.Color("196"),
	}
}
