package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousand separators into a decimal integer
// string. The input is expected to be a valid integer representation, such as
// the output of big.Int.String; a leading minus sign is preserved.
//
// Parameters:
//   - s: The decimal digit string to format.
//
// Returns:
//   - string: The input with commas every three digits.
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}

	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var builder strings.Builder
	builder.Grow(len(s) + len(s)/3 + 1)
	lead := len(s) % 3
	if lead > 0 {
		builder.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(s[i : i+3])
	}
	return sign + builder.String()
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
