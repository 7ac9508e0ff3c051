// Package files groups file access used around an interpreter run.
//
// Sub-packages:
//   - filesystem: Provider abstraction for reading scripts and creating
//     output files, with OS and in-memory implementations
//
// # Usage
//
//	import "github.com/vvka-141/vdir/internal/files/filesystem"
//
//	fsProvider := filesystem.NewOSFileSystem()
//	script, err := fsProvider.ReadFile("./commands.txt")
package files
