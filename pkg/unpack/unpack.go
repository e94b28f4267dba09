package unpack

import (
	"context"

	"github.com/arthur-debert/unfurl/pkg/errors"
	"github.com/arthur-debert/unfurl/pkg/logging"
	"github.com/arthur-debert/unfurl/pkg/types"
)

// ScratchPattern names scratch directories. The random suffix keeps
// concurrent extractions into the same destination from colliding on
// scratch space; the leading dot keeps them out of the user's way.
const ScratchPattern = ".unfurl-*"

// Unpacker expands an archive into a freshly created scratch directory
// under the destination, via the injected decompression service.
type Unpacker struct {
	fs      types.FS
	service Service
}

// New creates an Unpacker using the given filesystem and service
func New(fs types.FS, service Service) *Unpacker {
	return &Unpacker{fs: fs, service: service}
}

// Unpack ensures destDir exists, creates a scratch directory under it
// and expands the archive there, returning the scratch path. On
// extraction failure the scratch directory is returned alongside the
// error so the caller's cleanup path can remove whatever partial
// content the service left behind.
func (u *Unpacker) Unpack(ctx context.Context, archivePath, destDir string) (string, error) {
	logger := logging.GetLogger("unpack")

	if err := u.fs.MkdirAll(destDir, 0o755); err != nil {
		return "", errors.Wrapf(err, errors.ErrExtractionFailed, "failed to create destination %s", destDir).
			WithDetail("destination", destDir)
	}

	scratch, err := u.fs.MkdirTemp(destDir, ScratchPattern)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrExtractionFailed, "failed to create scratch directory in %s", destDir).
			WithDetail("destination", destDir)
	}

	logger.Debug().
		Str("archive", archivePath).
		Str("scratch", scratch).
		Msg("Unpacking archive")

	if err := u.service.Unpack(ctx, archivePath, scratch); err != nil {
		return scratch, errors.Wrapf(err, errors.ErrExtractionFailed, "failed to unpack %s", archivePath).
			WithDetail("archive", archivePath).
			WithDetail("scratch", scratch)
	}

	return scratch, nil
}
