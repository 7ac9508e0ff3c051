// Package logging provides concrete implementations of the vdir.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Diagnostics never go to stdout, which carries the mirrored run output.
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
