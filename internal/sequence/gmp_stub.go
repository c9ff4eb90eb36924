//go:build !gmp

package sequence

// gmpCalculators returns nothing in builds without the gmp tag; the
// GMP-backed engine needs cgo and libgmp.
func gmpCalculators() map[string]Calculator { return nil }
