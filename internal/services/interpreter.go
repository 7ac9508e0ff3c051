package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/vvka-141/vdir/internal/command"
	"github.com/vvka-141/vdir/internal/files/filesystem"
	"github.com/vvka-141/vdir/internal/output"
	"github.com/vvka-141/vdir/internal/session"
	"github.com/vvka-141/vdir/pkg/vdir"
)

// Interpreter runs scripts.
// Thread-Safety: each Run uses its own session and writer, so concurrent
// Run calls on one Interpreter are independent as long as the console
// writer tolerates concurrent use.
type Interpreter struct {
	fs      filesystem.FileSystemProvider
	logger  vdir.Logger
	console io.Writer
	now     func() time.Time
}

// NewInterpreter creates an Interpreter. console may be nil to disable
// mirroring result lines.
//
// Panics on nil fs or logger.
func NewInterpreter(fs filesystem.FileSystemProvider, logger vdir.Logger, console io.Writer) *Interpreter {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Interpreter{
		fs:      fs,
		logger:  logger,
		console: console,
		now:     time.Now,
	}
}

// Run interprets the script at cfg.ScriptPath and writes results to
// cfg.OutputPath. A missing or unreadable script fails with
// vdir.ErrScriptNotFound before the output file is created.
//
// Bad lines never stop the run. Only output failures and ctx cancellation
// do; in that case the returned result covers the lines handled so far.
func (i *Interpreter) Run(ctx context.Context, cfg vdir.RunConfig) (*vdir.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := i.now()

	content, err := i.readScript(cfg.ScriptPath)
	if err != nil {
		return nil, err
	}
	i.logger.Verbose("Read %s from %s", humanize.Bytes(uint64(len(content))), cfg.ScriptPath)

	file, err := i.fs.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vdir.ErrOutputFailed, err)
	}

	result := &vdir.RunResult{
		RunID:      uuid.New(),
		JobID:      cfg.JobID,
		OutputPath: cfg.OutputPath,
	}
	i.logger.Verbose("Run %s writing to %s", result.RunID, cfg.OutputPath)

	w := output.New(file, i.console)
	runErr := i.execute(ctx, string(content), w, result)

	if err := file.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("%w: %v", vdir.ErrOutputFailed, err)
	}

	result.OutputLines = w.Lines()
	result.Elapsed = i.now().Sub(start)
	i.logger.Verbose("%s", result)
	return result, runErr
}

// CheckScript verifies that path names an existing regular file.
// Failures wrap vdir.ErrScriptNotFound.
func CheckScript(fs filesystem.FileSystemProvider, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", vdir.ErrScriptNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", vdir.ErrScriptNotFound, path)
	}
	return nil
}

func (i *Interpreter) readScript(path string) ([]byte, error) {
	if err := CheckScript(i.fs, path); err != nil {
		return nil, err
	}
	content, err := i.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", vdir.ErrScriptNotFound, path, err)
	}
	return content, nil
}

func (i *Interpreter) execute(ctx context.Context, script string, w *output.Writer, result *vdir.RunResult) error {
	sess := session.New()

	lines := strings.Split(script, "\n")
	// A terminating newline does not start another line.
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}

	for n, raw := range lines {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run interrupted before line %d: %w", n+1, err)
		}

		line := strings.TrimSpace(raw)
		result.LinesRead++

		block, err := sess.ExecuteLine(line)
		var perr *command.ParseError
		switch {
		case errors.As(err, &perr):
			result.ParseErrors++
			i.logger.Verbose("line %d rejected: %s", n+1, perr.Reason)
		case err != nil:
			result.Executed++
			result.StateErrors++
			i.logger.Verbose("line %d failed: %v", n+1, err)
		default:
			result.Executed++
		}

		if err := w.WriteBlock(block); err != nil {
			return fmt.Errorf("%w: %v", vdir.ErrOutputFailed, err)
		}
	}
	return nil
}
