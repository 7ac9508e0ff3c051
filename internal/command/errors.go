package command

import "fmt"

// Rejection reasons reported in parse errors.
const (
	ReasonInvalidCommand = "Invalid Command"
	ReasonMissingParams  = "Invalid additional parameters"
	ReasonInvalidSource  = "Invalid source"
	ReasonInvalidDest    = "Invalid destination"
)

// ParseError reports a line that failed validation.
// Its message is the exact diagnostic line written to the run output.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid input: %s. Reason: %s", e.Input, e.Reason)
}
