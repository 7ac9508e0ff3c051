package vdir

import (
	"errors"
	"strings"
)

// Sentinel errors for fatal run failures.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := interpreter.Run(ctx, cfg)
//	if errors.Is(err, vdir.ErrScriptNotFound) {
//	    // Nothing was processed and no output file exists
//	}
var (
	// ErrScriptNotFound indicates the script path does not reference a readable file.
	ErrScriptNotFound = errors.New("Input file does not exist")

	// ErrInvalidConfig indicates vdir.yaml or an environment override is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutputFailed indicates the output file could not be created or written.
	ErrOutputFailed = errors.New("output failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrScriptNotFound):
		return ExitScriptNotFound
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrOutputFailed):
		return ExitOutputFailed
	}

	// cobra reports argument problems as plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "accepts") ||
		strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
