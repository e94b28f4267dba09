// Package place moves extracted content into its final destination.
//
// The Placer relocates the top-level entries of the effective source
// root into the target directory, preferring an atomic rename and
// falling back to copy+delete when rename fails (cross-device moves).
// Collisions with pre-existing entries are an error, never an
// overwrite, and partial failures leave already-moved entries in place.
package place

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/arthur-debert/unfurl/pkg/logging"
	"github.com/arthur-debert/unfurl/pkg/types"
)

// Place moves every immediate entry of sourceRoot into targetDir,
// creating targetDir first if it does not exist. It returns the names
// of the entries moved. On error the returned slice still holds
// whatever was moved before the failure; there is no rollback.
func Place(fsys types.FS, sourceRoot, targetDir string) ([]string, error) {
	logger := logging.GetLogger("place")

	info, err := fsys.Stat(sourceRoot)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrPreconditionFailed, "source root is not a directory: %s", sourceRoot).
			WithDetail("source_root", sourceRoot)
	}

	if info, err := fsys.Stat(targetDir); err == nil {
		if !info.IsDir() {
			return nil, errors.Newf(errors.ErrPreconditionFailed, "target is not a directory: %s", targetDir).
				WithDetail("target", targetDir)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrPreconditionFailed, "cannot access target %s", targetDir)
	} else if err := fsys.MkdirAll(targetDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPlacementFailed, "failed to create target %s", targetDir).
			WithDetail("target", targetDir)
	}

	entries, err := fsys.ReadDir(sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInspectionFailed, "failed to list source root %s", sourceRoot).
			WithDetail("source_root", sourceRoot)
	}

	var moved []string
	for i, entry := range entries {
		srcPath := filepath.Join(sourceRoot, entry.Name())
		destPath := filepath.Join(targetDir, entry.Name())

		if _, err := fsys.Lstat(destPath); err == nil {
			return moved, errors.Newf(errors.ErrNameCollision, "destination already contains %s", entry.Name()).
				WithDetail("entry", entry.Name()).
				WithDetail("target", destPath).
				WithDetail("remaining", entryNames(entries[i:]))
		}

		if err := moveEntry(fsys, srcPath, destPath); err != nil {
			return moved, errors.Wrapf(err, errors.ErrPlacementFailed, "failed to move %s", entry.Name()).
				WithDetail("entry", entry.Name()).
				WithDetail("remaining", entryNames(entries[i:]))
		}

		logger.Trace().Str("from", srcPath).Str("to", destPath).Msg("Entry moved")
		moved = append(moved, entry.Name())
	}

	return moved, nil
}

// CleanupScratch removes the scratch directory tree. Best-effort: a
// failure is logged and returned for the caller to surface as a
// warning, never escalated into a failed extraction.
func CleanupScratch(fsys types.FS, scratchDir string) error {
	logger := logging.GetLogger("place")

	if err := fsys.RemoveAll(scratchDir); err != nil {
		logger.Warn().
			Err(err).
			Str("scratch", scratchDir).
			Msg("Failed to remove scratch directory")
		return err
	}
	return nil
}

// moveEntry relocates a single entry, trying rename first and falling
// back to a recursive copy plus delete when rename is refused (the
// usual cause being a cross-device move).
func moveEntry(fsys types.FS, src, dest string) error {
	if err := fsys.Rename(src, dest); err == nil {
		return nil
	}

	if err := copyEntry(fsys, src, dest); err != nil {
		return err
	}
	return fsys.RemoveAll(src)
}

func copyEntry(fsys types.FS, src, dest string) error {
	info, err := fsys.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := fsys.Readlink(src)
		if err != nil {
			return err
		}
		return fsys.Symlink(target, dest)

	case info.IsDir():
		if err := fsys.MkdirAll(dest, info.Mode().Perm()); err != nil {
			return err
		}
		children, err := fsys.ReadDir(src)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := copyEntry(fsys, filepath.Join(src, child.Name()), filepath.Join(dest, child.Name())); err != nil {
				return err
			}
		}
		return nil

	default:
		data, err := fsys.ReadFile(src)
		if err != nil {
			return err
		}
		return fsys.WriteFile(dest, data, info.Mode().Perm())
	}
}

func entryNames(entries []fs.DirEntry) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names
}
