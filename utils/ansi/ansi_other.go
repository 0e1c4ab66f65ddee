//go:build !windows

package ansi

// EnableANSI is a no-op on platforms whose terminals process ANSI escape
// sequences natively.
func EnableANSI() {}
