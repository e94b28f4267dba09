package sanitize_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/unfurl/pkg/filesystem"
	"github.com/arthur-debert/unfurl/pkg/sanitize"
	"github.com/arthur-debert/unfurl/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_RemovesJunkDirectory(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	testutil.CreateFile(t, dir, "__MACOSX/._resource", "junk")
	testutil.CreateFile(t, dir, "keep.txt", "content")

	require.NoError(t, sanitize.Clean(fs, dir, []string{"__MACOSX", ".DS_Store"}))

	assert.NoDirExists(t, filepath.Join(dir, "__MACOSX"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestClean_RemovesJunkFile(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	testutil.CreateFile(t, dir, ".DS_Store", "junk")

	require.NoError(t, sanitize.Clean(fs, dir, []string{".DS_Store"}))
	assert.NoFileExists(t, filepath.Join(dir, ".DS_Store"))
}

func TestClean_AbsentJunkIsNoop(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	assert.NoError(t, sanitize.Clean(fs, dir, []string{"__MACOSX"}))
}

func TestClean_Idempotent(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	testutil.CreateFile(t, dir, "__MACOSX/._x", "junk")
	testutil.CreateFile(t, dir, "keep.txt", "content")

	require.NoError(t, sanitize.Clean(fs, dir, []string{"__MACOSX"}))
	require.NoError(t, sanitize.Clean(fs, dir, []string{"__MACOSX"}))

	assert.NoDirExists(t, filepath.Join(dir, "__MACOSX"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestClean_OnlyExactNames(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	testutil.CreateFile(t, dir, "__MACOSX_backup/file", "not junk")

	require.NoError(t, sanitize.Clean(fs, dir, []string{"__MACOSX"}))
	assert.FileExists(t, filepath.Join(dir, "__MACOSX_backup", "file"))
}
