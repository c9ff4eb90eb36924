package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time:
//
//	go build -ldflags "-X github.com/kugelrund/oeis-A300793/internal/app.Version=v1.2.3"
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
// Handled before flag parsing so `a300793 --version` never fails validation.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "a300793 %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
