package vdir

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunConfig contains all parameters needed to interpret one script.
type RunConfig struct {
	// ScriptPath is the file holding one command per line
	ScriptPath string

	// OutputPath is the file that receives the result lines.
	// It is created, or truncated, only once the script is known to be readable.
	OutputPath string

	// JobID identifies the run in logs; it is the start time in Unix milliseconds
	JobID int64

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the RunConfig has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (c *RunConfig) Validate() error {
	var errs []error

	if c.ScriptPath == "" {
		errs = append(errs, fmt.Errorf("ScriptPath is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	if c.JobID < 0 {
		errs = append(errs, fmt.Errorf("JobID cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// RunResult summarizes a completed interpreter run.
type RunResult struct {
	// RunID uniquely identifies the run, independent of the clock
	RunID uuid.UUID

	JobID      int64
	OutputPath string

	// LinesRead counts non-blank script lines
	LinesRead int

	// Executed counts lines that parsed and ran, whether or not they succeeded
	Executed int

	// ParseErrors counts lines rejected by the parser
	ParseErrors int

	// StateErrors counts valid commands that could not be applied
	StateErrors int

	// OutputLines counts lines written to the output
	OutputLines int

	Elapsed time.Duration
}

// String renders the run statistics on one line.
func (r *RunResult) String() string {
	return fmt.Sprintf("run %s: %d lines, %d executed, %d invalid, %d failed, %d output lines",
		r.RunID, r.LinesRead, r.Executed, r.ParseErrors, r.StateErrors, r.OutputLines)
}
