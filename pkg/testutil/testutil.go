// Package testutil provides helpers for building filesystem fixtures
// in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// Parent directories are created as needed. It fails the test if the file
// cannot be created and returns the file's path.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// CreateTree creates a set of files under root from a map of relative
// path to content. Entries whose path ends in a separator become empty
// directories.
func CreateTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		if len(name) > 0 && os.IsPathSeparator(name[len(name)-1]) {
			CreateDir(t, root, name)
			continue
		}
		CreateFile(t, root, name, content)
	}
}

// ListNames returns the sorted names of dir's immediate entries,
// failing the test on error.
func ListNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list %s: %v", dir, err)
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names
}
