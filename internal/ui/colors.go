package ui

// Color accessor functions return the escape code for a display role from the
// active theme. They are the only way presentation code should obtain colors.

// ColorRed returns the error color.
func ColorRed() string { return CurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return CurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return CurrentTheme().Warning }

// ColorBlue returns the secondary color.
func ColorBlue() string { return CurrentTheme().Secondary }

// ColorMagenta returns the primary accent color.
func ColorMagenta() string { return CurrentTheme().Primary }

// ColorCyan returns the informational color.
func ColorCyan() string { return CurrentTheme().Info }

// ColorBold returns the bold escape code.
func ColorBold() string { return CurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return CurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return CurrentTheme().Reset }
