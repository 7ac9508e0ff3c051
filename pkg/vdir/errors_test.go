package vdir_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/vdir/pkg/vdir"
)

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag --foo"), vdir.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), vdir.ExitUsageError},
		{"accepts args", errors.New("accepts between 1 and 2 arg(s), received 3"), vdir.ExitUsageError},
		{"missing script", errors.New("missing required argument: <script>"), vdir.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"x\" for \"-v\""), vdir.ExitUsageError},
		{"general error", errors.New("something went wrong"), vdir.ExitGeneralError},
		{"nil error", nil, vdir.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vdir.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"script not found", vdir.ErrScriptNotFound, vdir.ExitScriptNotFound},
		{"wrapped script not found", fmt.Errorf("open ./x.txt: %w", vdir.ErrScriptNotFound), vdir.ExitScriptNotFound},
		{"invalid config", fmt.Errorf("%w: bad yaml", vdir.ErrInvalidConfig), vdir.ExitConfigError},
		{"output failed", fmt.Errorf("%w: disk full", vdir.ErrOutputFailed), vdir.ExitOutputFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vdir.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestScriptNotFoundMessage(t *testing.T) {
	if vdir.ErrScriptNotFound.Error() != "Input file does not exist" {
		t.Errorf("unexpected diagnostic: %q", vdir.ErrScriptNotFound.Error())
	}
}
