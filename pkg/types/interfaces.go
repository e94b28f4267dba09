package types

import "io/fs"

// FS is the filesystem abstraction used throughout unfurl.
// Production code uses the OS implementation; tests inject a memory-backed one.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	MkdirTemp(dir, pattern string) (string, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error

	// Optional operations - implementations should check for support.
	// For testing, Lstat can fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
