package vdir

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  RunConfig
		wantErr bool
		errMsgs []string
	}{
		{
			name:   "valid",
			config: RunConfig{ScriptPath: "in.txt", OutputPath: "out.txt", JobID: 1},
		},
		{
			name:    "missing script",
			config:  RunConfig{OutputPath: "out.txt"},
			wantErr: true,
			errMsgs: []string{"ScriptPath is required"},
		},
		{
			name:    "missing both paths",
			config:  RunConfig{},
			wantErr: true,
			errMsgs: []string{"ScriptPath is required", "OutputPath is required"},
		},
		{
			name:    "negative job id",
			config:  RunConfig{ScriptPath: "in.txt", OutputPath: "out.txt", JobID: -1},
			wantErr: true,
			errMsgs: []string{"JobID cannot be negative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			for _, msg := range tt.errMsgs {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("expected error to contain %q, got %q", msg, err.Error())
				}
			}
		})
	}
}

func TestRunResult_String(t *testing.T) {
	r := &RunResult{
		RunID:       uuid.MustParse("6f1c2a52-8a4e-4f0e-9d55-3b8f1a2c9e10"),
		LinesRead:   5,
		Executed:    4,
		ParseErrors: 1,
		StateErrors: 2,
		OutputLines: 9,
	}
	want := "run 6f1c2a52-8a4e-4f0e-9d55-3b8f1a2c9e10: 5 lines, 4 executed, 1 invalid, 2 failed, 9 output lines"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
