package command

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vdir/pkg/vdir"
)

// Action is the verb of a script line.
type Action string

const (
	ActionDir   Action = "dir"
	ActionMkdir Action = "mkdir"
	ActionCd    Action = "cd"
	ActionUp    Action = "up"
	ActionMv    Action = "mv"
	ActionTree  Action = "tree"
)

type requirements struct {
	source      bool
	destination bool
}

var actions = map[Action]requirements{
	ActionDir:   {},
	ActionMkdir: {source: true},
	ActionCd:    {source: true},
	ActionUp:    {},
	ActionMv:    {source: true, destination: true},
	ActionTree:  {},
}

// RequiresSource reports whether a must be followed by a source name.
func (a Action) RequiresSource() bool {
	return actions[a].source
}

// RequiresDestination reports whether a must be followed by a destination.
func (a Action) RequiresDestination() bool {
	return actions[a].destination
}

// Known reports whether a is one of the supported actions.
func (a Action) Known() bool {
	_, ok := actions[a]
	return ok
}

// Command is a syntactically valid script line.
type Command struct {
	// Input is the whole line after trimming.
	Input       string
	Action      Action
	Source      string
	Destination string
}

// Echo renders the line that precedes every executed command.
// The action is padded to its column only when a source follows, and the
// source only when a destination follows.
func (c Command) Echo() string {
	var b strings.Builder
	b.WriteString("Command: ")
	if c.Source != "" {
		fmt.Fprintf(&b, "%-*s", vdir.ActionWidth, c.Action)
	} else {
		b.WriteString(string(c.Action))
	}
	if c.Destination != "" {
		fmt.Fprintf(&b, "%-*s", vdir.SourceWidth, c.Source)
	} else {
		b.WriteString(c.Source)
	}
	b.WriteString(c.Destination)
	return b.String()
}

// Segments splits the destination into its path segments.
func (c Command) Segments() []string {
	return SplitDestination(c.Destination)
}
