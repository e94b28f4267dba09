// Package sanitize removes known-junk entries from a directory after
// placement. Junk is platform metadata that was never part of the
// user's intended content, like the macOS resource-fork folder.
package sanitize

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/arthur-debert/unfurl/pkg/logging"
	"github.com/arthur-debert/unfurl/pkg/types"
)

// Clean removes each named junk entry from dir by exact name, files
// and directories alike (directories recursively). Entries that are
// absent are skipped, so Clean is idempotent: running it twice yields
// the same final state as running it once.
func Clean(fsys types.FS, dir string, junkNames []string) error {
	logger := logging.GetLogger("sanitize")

	for _, name := range junkNames {
		junkPath := filepath.Join(dir, name)
		if _, err := fsys.Lstat(junkPath); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, errors.ErrSanitizationFailed, "cannot inspect %s", junkPath).
				WithDetail("entry", name)
		}

		if err := fsys.RemoveAll(junkPath); err != nil {
			return errors.Wrapf(err, errors.ErrSanitizationFailed, "failed to remove %s", junkPath).
				WithDetail("entry", name)
		}
		logger.Debug().Str("entry", junkPath).Msg("Junk entry removed")
	}
	return nil
}
