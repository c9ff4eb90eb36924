package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI escape codes for error reporting. It decouples
// this package from the terminal theme system; callers that do not want
// colored output may pass nil.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleCalculationError inspects a calculation error, writes a diagnostic
// message to out, and maps the error to the appropriate process exit code.
//
// Parameters:
//   - err: The error returned by a calculation or validation run.
//   - duration: How long the operation ran before failing.
//   - out: The writer for the diagnostic message.
//   - colors: Optional color provider; nil disables colorization.
//
// Returns:
//   - int: The exit code corresponding to the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	switch {
	case err == nil:
		return ExitSuccess

	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sCalculation timed out after %s.%s\n", yellow, duration.Round(time.Millisecond), reset)
		return ExitErrorTimeout

	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCalculation canceled after %s.%s\n", yellow, duration.Round(time.Millisecond), reset)
		return ExitErrorCanceled

	case IsMismatchError(err):
		fmt.Fprintf(out, "%sCRITICAL: %v%s\n", red, err, reset)
		return ExitErrorMismatch

	case IsValidationError(err):
		fmt.Fprintf(out, "%sInvalid input: %v%s\n", red, err, reset)
		return ExitErrorConfig

	default:
		fmt.Fprintf(out, "%sError: %v%s\n", red, err, reset)
		return ExitErrorGeneric
	}
}
