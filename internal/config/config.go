// Package config handles command-line parsing, environment variable
// overrides, and validation of the application configuration.
//
// Priority order: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/kugelrund/oeis-A300793/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "A300793_"

// DefaultCount is the number of sequence terms computed when no count is
// given on the command line.
const DefaultCount = 10

// DefaultTimeout bounds a calculation run. The proven formula is quadratic
// in the term count, so large counts can genuinely take this long.
const DefaultTimeout = 5 * time.Minute

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// Count is the number of sequence terms to compute, a(1) through
	// a(Count).
	Count int
	// Algo selects the formula to run: a factory key or "all" to run every
	// registered formula concurrently and cross-validate.
	Algo string
	// Timeout bounds the total calculation time.
	Timeout time.Duration
	// Verbose enables detailed execution output.
	Verbose bool
	// Quiet suppresses progress display and banners; only the terms are
	// printed.
	Quiet bool
	// OutputFile, when non-empty, receives the computed terms.
	OutputFile string
	// TUI launches the interactive terminal dashboard instead of the plain
	// CLI output.
	TUI bool
	// NoColor disables ANSI colors in CLI output.
	NoColor bool
	// MetricsAddr, when non-empty, is the listen address for the Prometheus
	// metrics endpoint (e.g. ":9090").
	MetricsAddr string
	// Completion requests generation of a shell completion script ("bash"
	// or "zsh") instead of running a calculation.
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// A single optional positional argument sets the term count, overriding -n:
//
//	a300793 25
//
// Returns flag.ErrHelp when -h/--help was requested.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Count, "n", DefaultCount, "number of sequence terms to compute")
	fs.StringVar(&cfg.Algo, "algo", "all", fmt.Sprintf("formula to run: %s, or 'all' to cross-validate", strings.Join(availableAlgos, ", ")))
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "global timeout for the calculation")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable verbose output (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the terms (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the terms")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the terms to this file (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the terms to this file")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive terminal dashboard")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "listen address for the Prometheus metrics endpoint (disabled when empty)")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a shell completion script (bash|zsh)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options] [count]\n\n", programName)
		fmt.Fprintf(errWriter, "Computes terms of OEIS A300793 with two independent formulas and\ncross-validates them term by term.\n\n")
		fmt.Fprintf(errWriter, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables (prefix %s): COUNT, ALGO, TIMEOUT, VERBOSE,\nQUIET, OUTPUT, TUI, NO_COLOR, METRICS_ADDR\n", EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := applyPositionalCount(&cfg, fs.Args()); err != nil {
		return AppConfig{}, err
	}

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// applyPositionalCount interprets a single trailing argument as the term
// count. The positional form takes priority over both -n and the
// environment.
func applyPositionalCount(cfg *AppConfig, rest []string) error {
	switch len(rest) {
	case 0:
		return nil
	case 1:
		count, err := strconv.Atoi(rest[0])
		if err != nil {
			return apperrors.NewConfigError("invalid count %q: must be an integer", rest[0])
		}
		cfg.Count = count
		return nil
	default:
		return apperrors.NewConfigError("too many arguments: %v", rest)
	}
}

// validate checks the parsed configuration for consistency.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Count < 0 {
		return apperrors.ValidationError{
			Field:   "count",
			Message: "number of terms must be non-negative",
		}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{
			Field:   "timeout",
			Message: "timeout must be positive",
		}
	}
	if cfg.Completion != "" && cfg.Completion != "bash" && cfg.Completion != "zsh" {
		return apperrors.NewConfigError("unsupported completion shell %q (supported: bash, zsh)", cfg.Completion)
	}
	if cfg.Algo != "all" {
		found := false
		for _, a := range availableAlgos {
			if a == cfg.Algo {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown algorithm %q (available: %s, all)", cfg.Algo, strings.Join(availableAlgos, ", "))
		}
	}
	return nil
}
