// Package extract orchestrates the extraction pipeline: unpack into
// scratch, normalize the layout, place into the destination, clean up
// scratch, optionally sanitize. Single pass, no retries; the first
// hard failure stops the pipeline.
package extract

import (
	"context"
	"fmt"

	"github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/arthur-debert/unfurl/pkg/filesystem"
	"github.com/arthur-debert/unfurl/pkg/layout"
	"github.com/arthur-debert/unfurl/pkg/logging"
	"github.com/arthur-debert/unfurl/pkg/paths"
	"github.com/arthur-debert/unfurl/pkg/place"
	"github.com/arthur-debert/unfurl/pkg/sanitize"
	"github.com/arthur-debert/unfurl/pkg/types"
	"github.com/arthur-debert/unfurl/pkg/unpack"
)

// Options holds the inputs for one extraction
type Options struct {
	// ArchivePath is the archive to extract. Must be an existing
	// regular file.
	ArchivePath string

	// DestDir is where the content lands, created if missing
	DestDir string

	// Mode selects the placement policy
	Mode types.Mode

	// Clean runs the sanitizer on the target after placement
	Clean bool

	// Ignored overrides the entry names excluded during layout
	// normalization; nil means layout.DefaultIgnored
	Ignored []string

	// Junk overrides the entry names the sanitizer removes; nil means
	// layout.DefaultIgnored
	Junk []string

	// Service overrides the decompression backend; nil means the
	// in-process archives backend
	Service unpack.Service

	// FileSystem allows injecting a filesystem for testing
	FileSystem types.FS
}

// Extract runs the full pipeline and reports exactly one outcome: a
// result, or a typed error. Scratch space is released on every exit
// path; no scratch directory survives the call short of catastrophic
// process termination.
func Extract(ctx context.Context, opts Options) (*types.ExtractResult, error) {
	logger := logging.GetLogger("commands.extract")
	done := logging.LogOperationStart(logger, "extract")
	defer done()

	logger.Info().
		Str("archive", opts.ArchivePath).
		Str("destination", opts.DestDir).
		Stringer("mode", opts.Mode).
		Bool("clean", opts.Clean).
		Msg("Extracting archive")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	service := opts.Service
	if service == nil {
		service = unpack.NewArchivesService()
	}
	ignored := opts.Ignored
	if ignored == nil {
		ignored = layout.DefaultIgnored
	}
	junk := opts.Junk
	if junk == nil {
		junk = layout.DefaultIgnored
	}

	if err := paths.ValidateArchivePath(fs, opts.ArchivePath); err != nil {
		return nil, err
	}
	if opts.DestDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "destination directory is empty")
	}

	result := &types.ExtractResult{
		ArchivePath: opts.ArchivePath,
		Destination: opts.DestDir,
		Mode:        opts.Mode,
	}

	scratch, err := unpack.New(fs, service).Unpack(ctx, opts.ArchivePath, opts.DestDir)

	// Scratch must go away on every exit path below, including the
	// partial-population case when the service itself failed.
	cleaned := false
	if scratch != "" {
		defer func() {
			if !cleaned {
				_ = place.CleanupScratch(fs, scratch)
			}
		}()
	}
	if err != nil {
		return nil, err
	}

	plan, err := layout.Normalize(fs, scratch, opts.DestDir, paths.ArchiveName(opts.ArchivePath), opts.Mode, ignored)
	if err != nil {
		return nil, err
	}
	result.Target = plan.Target
	result.Collapsed = plan.Collapsed

	moved, err := place.Place(fs, plan.SourceRoot, plan.Target)
	if err != nil {
		return nil, err
	}
	result.Moved = moved

	if err := place.CleanupScratch(fs, scratch); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("scratch directory not removed: %s", scratch))
	}
	cleaned = true

	// Sanitization failure never unwinds a completed placement
	if opts.Clean {
		if err := sanitize.Clean(fs, plan.Target, junk); err != nil {
			logger.Warn().Err(err).Str("target", plan.Target).Msg("Sanitization failed")
			result.Warnings = append(result.Warnings, fmt.Sprintf("sanitization failed: %v", err))
		}
	}

	logger.Info().
		Str("target", result.Target).
		Int("entries", len(result.Moved)).
		Bool("collapsed", result.Collapsed).
		Msg("Extraction complete")

	return result, nil
}
