package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_JoinsFileLinesAndTerminatesConsoleLines(t *testing.T) {
	var file, console bytes.Buffer
	w := New(&file, &console)

	require.NoError(t, w.WriteLine("Command: dir"))
	require.NoError(t, w.WriteBlock([]string{"Directory of root:", "No subdirectories"}))

	assert.Equal(t, "Command: dir\nDirectory of root:\nNo subdirectories", file.String())
	assert.Equal(t, "Command: dir\nDirectory of root:\nNo subdirectories\n", console.String())
	assert.Equal(t, 3, w.Lines())
}

func TestWriter_NilSinks(t *testing.T) {
	var file bytes.Buffer
	w := New(&file, nil)
	require.NoError(t, w.WriteLine("a"))
	require.NoError(t, w.WriteLine("b"))
	assert.Equal(t, "a\nb", file.String())

	w = New(nil, nil)
	require.NoError(t, w.WriteLine("ignored"))
	assert.Equal(t, 1, w.Lines())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_StickyError(t *testing.T) {
	var console bytes.Buffer
	w := New(failingWriter{}, &console)

	err := w.WriteLine("first")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.Equal(t, err, w.WriteLine("second"))
	assert.Equal(t, err, w.Err())
	assert.Empty(t, console.String())
	assert.Equal(t, 0, w.Lines())
}
