//go:build !unix

package cli

import "io"

// terminalWidth is unavailable on this platform; callers fall back to the
// default progress bar width.
func terminalWidth(io.Writer) int { return 0 }
