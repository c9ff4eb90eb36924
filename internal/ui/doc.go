// Package ui provides terminal color themes shared by the CLI and the TUI.
//
// A process-wide theme is selected once at startup via InitTheme (honoring
// the NO_COLOR convention and the terminal background) and consumed through
// the Color* accessor functions, so presentation code never hardcodes escape
// sequences.
package ui
