package unpack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/unfurl/pkg/logging"
	"github.com/mholt/archives"
)

type seekerReadAt interface {
	io.ReaderAt
	io.Seeker
}

// Service is the decompression collaborator. Implementations must fully
// materialize the archive's contents under targetDir, creating
// subdirectories as encoded in the archive, and report failure through
// the returned error rather than through side channels.
type Service interface {
	Unpack(ctx context.Context, archivePath, targetDir string) error
}

// ArchivesService decompresses in-process using mholt/archives format
// autodetection. It handles zip, tar (with the usual compressions),
// rar and 7z.
type ArchivesService struct{}

// NewArchivesService creates the default in-process decompression service
func NewArchivesService() *ArchivesService {
	return &ArchivesService{}
}

func (s *ArchivesService) Unpack(ctx context.Context, archivePath, targetDir string) error {
	logger := logging.GetLogger("unpack.archives")

	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer f.Close()

	format, input, err := archives.Identify(ctx, filepath.Base(archivePath), f)
	if err != nil {
		return fmt.Errorf("failed to identify archive format of %s: %w", archivePath, err)
	}

	extractor, ok := format.(archives.Extractor)
	if !ok {
		return fmt.Errorf("%s is not an extractable archive (%s)", archivePath, format.Extension())
	}

	// Zip and 7z need random access; buffer when Identify hands back a
	// plain stream
	if _, ok := input.(seekerReadAt); !ok {
		b, err := io.ReadAll(input)
		if err != nil {
			return fmt.Errorf("failed to read archive %s: %w", archivePath, err)
		}
		input = bytes.NewReader(b)
	}

	err = extractor.Extract(ctx, input, func(ctx context.Context, info archives.FileInfo) error {
		return writeMember(targetDir, info)
	})
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", archivePath, err)
	}

	logger.Debug().
		Str("archive", archivePath).
		Str("format", format.Extension()).
		Str("target", targetDir).
		Msg("Archive expanded")
	return nil
}

// writeMember materializes one archive member under targetDir
func writeMember(targetDir string, info archives.FileInfo) error {
	// Member names are untrusted input
	name := filepath.FromSlash(info.NameInArchive)
	if !filepath.IsLocal(name) {
		return fmt.Errorf("archive contains invalid path: %s", info.NameInArchive)
	}
	destPath := filepath.Join(targetDir, name)

	switch {
	case info.IsDir():
		return os.MkdirAll(destPath, dirMode(info.Mode()))

	case info.Mode()&fs.ModeSymlink != 0:
		if info.LinkTarget == "" {
			return fmt.Errorf("symlink member %s has no target", info.NameInArchive)
		}
		// Link targets are untrusted too: resolved from the link's
		// directory, they must stay inside targetDir
		linkTarget := filepath.FromSlash(info.LinkTarget)
		if filepath.IsAbs(linkTarget) || !filepath.IsLocal(filepath.Join(filepath.Dir(name), linkTarget)) {
			return fmt.Errorf("archive symlink %s escapes the extraction root: %s", info.NameInArchive, info.LinkTarget)
		}
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return err
		}
		return os.Symlink(linkTarget, destPath)

	default:
		reader, err := info.Open()
		if err != nil {
			return err
		}
		defer reader.Close()

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return err
		}

		mode := info.Mode().Perm()
		if mode == 0 {
			mode = 0o644
		}
		outFile, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
		if err != nil {
			return err
		}
		defer outFile.Close()

		_, err = io.Copy(outFile, reader)
		return err
	}
}

func dirMode(mode fs.FileMode) fs.FileMode {
	perm := mode.Perm()
	if perm == 0 {
		perm = 0o755
	}
	return perm
}

// CommandService decompresses by invoking an external command. The
// command template uses %archive and %dest placeholders, e.g.
// "unar -o %dest %archive"; single or double quotes group arguments
// that contain spaces. Failure is determined solely by the command's
// exit status; stderr is captured and attached to the error as a
// diagnostic, never inspected to decide success.
type CommandService struct {
	Template string
}

// NewCommandService creates a decompression service from a command template
func NewCommandService(template string) *CommandService {
	return &CommandService{Template: template}
}

func (s *CommandService) Unpack(ctx context.Context, archivePath, targetDir string) error {
	logger := logging.GetLogger("unpack.command")

	if strings.TrimSpace(s.Template) == "" {
		return fmt.Errorf("no unpack command configured")
	}

	args := splitTemplate(s.Template)
	for i, arg := range args {
		arg = strings.ReplaceAll(arg, "%archive", archivePath)
		args[i] = strings.ReplaceAll(arg, "%dest", targetDir)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stderr = &stderr

	logger.Debug().
		Str("command", args[0]).
		Strs("args", args[1:]).
		Msg("Invoking external unpacker")

	if err := cmd.Run(); err != nil {
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic != "" {
			return fmt.Errorf("%s failed: %w: %s", args[0], err, diagnostic)
		}
		return fmt.Errorf("%s failed: %w", args[0], err)
	}
	return nil
}

// splitTemplate splits a command template into argv. Single and double
// quotes group a span into one argument so fixed arguments may contain
// spaces; an unterminated quote runs to the end of the template.
func splitTemplate(template string) []string {
	var args []string
	var current strings.Builder

	var quote rune
	inToken := false
	for _, r := range template {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if inToken {
		args = append(args, current.String())
	}
	return args
}
