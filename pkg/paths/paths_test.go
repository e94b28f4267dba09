package paths_test

import (
	"testing"

	"github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/arthur-debert/unfurl/pkg/filesystem"
	"github.com/arthur-debert/unfurl/pkg/paths"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "single extension",
			path:     "/downloads/report.zip",
			expected: "report",
		},
		{
			name:     "double extension strips only the last segment",
			path:     "foo.tar.gz",
			expected: "foo.tar",
		},
		{
			name:     "no extension",
			path:     "README",
			expected: "README",
		},
		{
			name:     "dotfile with no stem",
			path:     ".tgz",
			expected: "",
		},
		{
			name:     "directory components are stripped",
			path:     "/a/b/c/music.7z",
			expected: "music",
		},
		{
			name:     "trailing dot",
			path:     "weird.",
			expected: "weird",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, paths.ArchiveName(tt.path))
		})
	}
}

func TestValidateArchivePath(t *testing.T) {
	memFs := afero.NewMemMapFs()
	fs := filesystem.NewAferoFS(memFs)

	require.NoError(t, afero.WriteFile(memFs, "/archives/data.zip", []byte("PK"), 0644))
	require.NoError(t, memFs.MkdirAll("/archives/dir.zip", 0755))

	t.Run("regular file passes", func(t *testing.T) {
		assert.NoError(t, paths.ValidateArchivePath(fs, "/archives/data.zip"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := paths.ValidateArchivePath(fs, "/archives/nope.zip")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrArchiveNotFound))
	})

	t.Run("directory rejected", func(t *testing.T) {
		err := paths.ValidateArchivePath(fs, "/archives/dir.zip")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrArchiveInvalid))
	})

	t.Run("empty path rejected", func(t *testing.T) {
		err := paths.ValidateArchivePath(fs, "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
