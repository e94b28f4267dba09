// Package layout decides where extracted content moves from and to.
//
// This is the placement-decision core of unfurl: given a scratch
// directory full of freshly unpacked content, it picks the effective
// source root (collapsing a redundant single wrapper directory when the
// mode calls for it) and the final target directory.
package layout

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/arthur-debert/unfurl/pkg/logging"
	"github.com/arthur-debert/unfurl/pkg/types"
)

// DefaultIgnored are the entry names excluded when counting interesting
// entries, and the ones the sanitizer removes after placement. Platform
// metadata, not user content.
var DefaultIgnored = []string{"__MACOSX", ".DS_Store"}

// Normalize inspects scratchDir's immediate contents and computes the
// extraction Plan for the given mode.
//
// Many archives wrap their payload in a single directory matching the
// archive name. In flatten and subdir modes, when the scratch directory
// holds exactly one interesting entry and that entry is a directory,
// the wrapper is elided: the Plan's SourceRoot points inside it. That
// avoids double-nesting like dest/name/name/... while leaving archives
// with loose top-level files untouched. Respect mode never collapses.
//
// Entries named in ignored do not count toward "multiple roots", so an
// archive holding one real directory plus platform metadata still
// collapses. archiveName names the target child directory in subdir
// mode and is unused otherwise.
func Normalize(fsys types.FS, scratchDir, destDir, archiveName string, mode types.Mode, ignored []string) (types.Plan, error) {
	logger := logging.GetLogger("layout")

	entries, err := fsys.ReadDir(scratchDir)
	if err != nil {
		return types.Plan{}, errors.Wrapf(err, errors.ErrInspectionFailed, "failed to list scratch directory %s", scratchDir).
			WithDetail("scratch", scratchDir)
	}

	interesting := filterInteresting(entries, ignored)

	plan := types.Plan{
		SourceRoot: scratchDir,
		Target:     destDir,
	}

	switch mode {
	case types.ModeRespect:
		// Preserve the archive's internal layout verbatim

	case types.ModeFlatten, types.ModeSubdir:
		if len(interesting) == 1 && interesting[0].IsDir() {
			plan.SourceRoot = filepath.Join(scratchDir, interesting[0].Name())
			plan.Collapsed = true
		}
		if mode == types.ModeSubdir && archiveName != "" {
			plan.Target = filepath.Join(destDir, archiveName)
		}

	default:
		return types.Plan{}, errors.Newf(errors.ErrPreconditionFailed, "unhandled extraction mode %v", mode)
	}

	logger.Debug().
		Str("scratch", scratchDir).
		Str("source_root", plan.SourceRoot).
		Str("target", plan.Target).
		Stringer("mode", mode).
		Bool("collapsed", plan.Collapsed).
		Int("interesting", len(interesting)).
		Msg("Layout normalized")

	return plan, nil
}

// filterInteresting drops entries whose name is in the ignored set
func filterInteresting(entries []fs.DirEntry, ignored []string) []fs.DirEntry {
	ignoredSet := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		ignoredSet[name] = struct{}{}
	}

	var interesting []fs.DirEntry
	for _, entry := range entries {
		if _, ok := ignoredSet[entry.Name()]; ok {
			continue
		}
		interesting = append(interesting, entry)
	}
	return interesting
}
