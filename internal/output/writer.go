// Package output writes interpreter results in program order.
//
// A Writer mirrors every line to two sinks. The persisted sink receives the
// lines joined by newlines with no trailing newline; the console sink
// receives each line newline-terminated. All writes go through one Writer,
// so blocks can never interleave.
package output

import (
	"fmt"
	"io"
	"sync"
)

// Writer is the single sequential sink for a run.
// Safe for concurrent use, though a run only ever writes from one goroutine.
type Writer struct {
	mu      sync.Mutex
	file    io.Writer
	console io.Writer
	lines   int
	err     error
}

// New creates a Writer. Either sink may be nil.
func New(file, console io.Writer) *Writer {
	return &Writer{file: file, console: console}
}

// WriteLine appends one line to both sinks. After the first failure every
// call returns that same error and writes nothing.
func (w *Writer) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeLine(line)
}

// WriteBlock appends lines in order without letting another write in between.
func (w *Writer) WriteBlock(lines []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, line := range lines {
		if err := w.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeLine(line string) error {
	if w.err != nil {
		return w.err
	}

	if w.file != nil {
		sep := "\n"
		if w.lines == 0 {
			sep = ""
		}
		if _, err := io.WriteString(w.file, sep+line); err != nil {
			w.err = fmt.Errorf("failed to write output: %w", err)
			return w.err
		}
	}
	if w.console != nil {
		if _, err := io.WriteString(w.console, line+"\n"); err != nil {
			w.err = fmt.Errorf("failed to write console output: %w", err)
			return w.err
		}
	}

	w.lines++
	return nil
}

// Lines returns the number of lines written so far.
func (w *Writer) Lines() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lines
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}
