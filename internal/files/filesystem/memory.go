package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	modTime time.Time
	isDir   bool
}

// memoryWriter buffers writes and publishes them on Close.
type memoryWriter struct {
	fs   *MemoryFileSystem
	path string
	buf  bytes.Buffer
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	w.fs.put(w.path, w.buf.Bytes())
	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu    sync.Mutex
	files map[string]*memoryFile // map of cleaned path -> file
}

// NewMemoryFileSystem creates a new, empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
	}
}

// clean normalizes to forward slashes (virtual filesystem convention).
func clean(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.put(filePath, []byte(content))
}

// AddDir adds an empty directory entry
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[clean(dirPath)] = &memoryFile{isDir: true, modTime: time.Now()}
}

func (mfs *MemoryFileSystem) put(filePath string, content []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	data := make([]byte, len(content))
	copy(data, content)
	mfs.files[clean(filePath)] = &memoryFile{content: data, modTime: time.Now()}
}

// Exists reports whether a file or directory entry exists at p
func (mfs *MemoryFileSystem) Exists(p string) bool {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	_, ok := mfs.files[clean(p)]
	return ok
}

// Paths returns every stored path in sorted order
func (mfs *MemoryFileSystem) Paths() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	paths := make([]string, 0, len(mfs.files))
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p := clean(statPath)
	file, exists := mfs.files[p]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}

	mode := fs.FileMode(0644)
	if file.isDir {
		mode = 0755 | fs.ModeDir
	}
	return &memoryFileInfo{
		name:    path.Base(p),
		size:    int64(len(file.content)),
		mode:    mode,
		modTime: file.modTime,
		isDir:   file.isDir,
	}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	file, exists := mfs.files[clean(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	data := make([]byte, len(file.content))
	copy(data, file.content)
	return data, nil
}

// Create implements FileSystemProvider.Create. The file exists, empty,
// as soon as Create returns; written content appears on Close.
func (mfs *MemoryFileSystem) Create(filePath string) (io.WriteCloser, error) {
	mfs.mu.Lock()
	if file, ok := mfs.files[clean(filePath)]; ok && file.isDir {
		mfs.mu.Unlock()
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	mfs.mu.Unlock()

	mfs.put(filePath, nil)
	return &memoryWriter{fs: mfs, path: filePath}, nil
}
