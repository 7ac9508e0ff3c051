package ui

import (
	"os"

	"golang.org/x/term"
)

// StyledOutput reports whether decorative styling should be applied to f.
//
// Returns false if:
//   - VDIR_PLAIN=1 is set
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - f is not a terminal
func StyledOutput(f *os.File) bool {
	if os.Getenv("VDIR_PLAIN") == "1" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
