package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/arthur-debert/unfurl/pkg/types"
)

// ArchiveName derives a bare name from an archive path: the base name
// with its last extension segment removed. Only one segment is
// stripped, so "foo.tar.gz" resolves to "foo.tar". A name without an
// extension is returned unchanged. A name that is nothing but an
// extension (".tgz") resolves to the empty string; callers that use
// the result as a directory name must handle that case.
func ArchiveName(archivePath string) string {
	base := filepath.Base(archivePath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// ValidateArchivePath checks that the given path exists and is a
// regular file. It returns a typed error suitable for surfacing
// directly to the user.
func ValidateArchivePath(fs types.FS, archivePath string) error {
	if archivePath == "" {
		return errors.New(errors.ErrInvalidInput, "archive path is empty")
	}

	info, err := fs.Stat(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrArchiveNotFound, "archive does not exist: %s", archivePath)
		}
		return errors.Wrapf(err, errors.ErrArchiveNotFound, "cannot access archive %s", archivePath)
	}

	if info.IsDir() {
		return errors.Newf(errors.ErrArchiveInvalid, "archive path is a directory: %s", archivePath)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrArchiveInvalid, "archive is not a regular file: %s", archivePath)
	}

	return nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
