// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The interpreter reads its script and creates its output file through a
// FileSystemProvider, which keeps run orchestration testable without
// touching the disk.
//
// Key interfaces:
//   - FileSystemProvider: Stat, ReadFile and Create
//   - FileInfo: File metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
