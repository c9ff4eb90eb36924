package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "timeout")
	Short     string   // short flag without "-" (e.g., "n")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsAlgo    bool     // true if values come from the formula list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Number of sequence terms to compute", ValueName: "count"},
	{Long: "algo", Help: "Formula to run", IsAlgo: true, ValueName: "formula"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"30s", "1m", "5m", "10m", "1h"}, ValueName: "duration"},
	{Long: "verbose", Short: "v", Help: "Show every term even for large counts"},
	{Long: "quiet", Short: "q", Help: "Print only the terms"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "tui", Help: "Launch the interactive dashboard"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "metrics-addr", Help: "Prometheus metrics listen address", ValueName: "address"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified
// shell. Returns an error for unsupported shells.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh)", shell)
	}
}

// formatAlgoList joins formula names with space separators, appending the
// "all" pseudo-formula.
func formatAlgoList(algorithms []string) string {
	return strings.Join(append(append([]string{}, algorithms...), "all"), " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var caseBody strings.Builder
	for _, f := range flagRegistry {
		var body string
		switch {
		case f.IsAlgo:
			body = `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		var patterns []string
		if f.Long != "" {
			patterns = append(patterns, "--"+f.Long, "-"+f.Long)
		}
		if f.Short != "" {
			patterns = append(patterns, "-"+f.Short)
		}
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(patterns, "|"))
		caseBody.WriteString(")\n            ")
		caseBody.WriteString(body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	_, err := fmt.Fprintf(out, `# Bash completion script for a300793
# Add this to your ~/.bashrc or ~/.bash_completion

_a300793_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    algorithms="%s"

    case "${prev}" in
%s    esac

    if [[ ${cur} == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _a300793_completions a300793
`, strings.Join(opts, " "), formatAlgoList(algorithms), caseBody.String())
	return err
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	var args strings.Builder
	for _, f := range flagRegistry {
		spec := zshArgSpec(f, algorithms)
		if spec == "" {
			continue
		}
		args.WriteString("    ")
		args.WriteString(spec)
		args.WriteString(" \\\n")
	}

	_, err := fmt.Fprintf(out, `#compdef a300793
# Zsh completion script for a300793
# Place this file in a directory on your $fpath as _a300793

_a300793() {
  _arguments \
%s    '*:count:'
}

_a300793 "$@"
`, args.String())
	return err
}

// zshArgSpec renders one flag registry entry as a zsh _arguments spec.
func zshArgSpec(f FlagCompletion, algorithms []string) string {
	name := "--" + f.Long
	if f.Long == "" {
		name = "-" + f.Short
	}

	var action string
	switch {
	case f.IsAlgo:
		action = fmt.Sprintf(":%s:(%s)", f.ValueName, formatAlgoList(algorithms))
	case f.IsFile:
		action = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		action = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		action = fmt.Sprintf(":%s:", f.ValueName)
	}

	return fmt.Sprintf("'%s[%s]%s'", name, f.Help, action)
}
