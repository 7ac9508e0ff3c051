package command

import (
	"strings"

	"github.com/vvka-141/vdir/pkg/vdir"
)

// Fields is the raw fixed-width split of a line, before validation.
type Fields struct {
	Action      string
	Source      string
	Destination string
}

// Split slices line into its fixed-width fields by character position and
// trims each one. Short lines yield empty trailing fields.
func Split(line string) Fields {
	runes := []rune(line)
	field := func(from, to int) string {
		if from >= len(runes) {
			return ""
		}
		if to < 0 || to > len(runes) {
			to = len(runes)
		}
		return strings.TrimSpace(string(runes[from:to]))
	}

	sourceStart := vdir.ActionWidth
	destStart := vdir.ActionWidth + vdir.SourceWidth
	return Fields{
		Action:      field(0, sourceStart),
		Source:      field(sourceStart, destStart),
		Destination: field(destStart, -1),
	}
}

// Parse validates one script line. The line is trimmed before slicing.
// On failure the error is a *ParseError carrying the first failed rule.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	f := Split(line)

	cmd := Command{
		Input:       line,
		Action:      Action(f.Action),
		Source:      f.Source,
		Destination: f.Destination,
	}

	if reason := validate(cmd); reason != "" {
		return Command{}, &ParseError{Input: line, Reason: reason}
	}
	return cmd, nil
}

func validate(cmd Command) string {
	if !cmd.Action.Known() {
		return ReasonInvalidCommand
	}
	if cmd.Action.RequiresSource() {
		if cmd.Source == "" {
			return ReasonMissingParams
		}
		if !ValidName(cmd.Source) {
			return ReasonInvalidSource
		}
	}
	if cmd.Destination != "" && !ValidDestination(cmd.Destination) {
		return ReasonInvalidDest
	}
	if cmd.Action.RequiresDestination() && cmd.Destination == "" {
		return ReasonMissingParams
	}
	return ""
}
