// Package cli wires the unfurl command tree. It is host-integration
// glue only: flag parsing, config resolution and result presentation.
// All extraction behavior lives behind pkg/commands/extract.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/unfurl/internal/version"
	"github.com/arthur-debert/unfurl/pkg/commands/extract"
	"github.com/arthur-debert/unfurl/pkg/config"
	"github.com/arthur-debert/unfurl/pkg/logging"
	"github.com/arthur-debert/unfurl/pkg/paths"
	"github.com/arthur-debert/unfurl/pkg/types"
	"github.com/arthur-debert/unfurl/pkg/unpack"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "unfurl",
		Short: "Extract archives into the layout you actually want",
		Long: `unfurl extracts a compressed archive into a destination directory,
normalizing the archive's internal layout on the way: a redundant single
wrapper directory can be collapsed, content can be forced into a fresh
archive-named subdirectory, or the archive's structure can be kept verbatim.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("unfurl version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newExtractCmd() *cobra.Command {
	var (
		modeFlag    string
		cleanFlag   bool
		backendFlag string
	)

	cmd := &cobra.Command{
		Use:   "extract <archive> [destination]",
		Short: "Extract an archive into a destination directory",
		Long: `Extract expands an archive and places its content according to the
selected mode:

  subdir   place content in a new child directory named after the archive
  flatten  merge content directly into the destination, collapsing a
           single wrapper directory when the archive has one
  respect  keep the archive's internal layout exactly as unpacked

When the destination is omitted, the current directory is used.`,
		Example: `  # Extract report.zip into ./report
  unfurl extract report.zip

  # Merge the archive's content straight into ~/assets
  unfurl extract --mode flatten textures.tar.gz ~/assets

  # Keep the layout verbatim and strip macOS metadata afterwards
  unfurl extract --mode respect --clean photos.zip`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if modeFlag == "" {
				modeFlag = cfg.Mode
			}
			mode, err := types.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			destDir := ""
			if len(args) > 1 {
				destDir = paths.ExpandHome(args[1])
			} else if destDir, err = os.Getwd(); err != nil {
				return fmt.Errorf("cannot determine current directory: %w", err)
			}

			if !cmd.Flags().Changed("clean") {
				cleanFlag = cfg.Clean
			}
			if backendFlag == "" {
				backendFlag = cfg.Backend
			}
			service, err := newService(backendFlag, cfg)
			if err != nil {
				return err
			}

			result, err := extract.Extract(cmd.Context(), extract.Options{
				ArchivePath: paths.ExpandHome(args[0]),
				DestDir:     destDir,
				Mode:        mode,
				Clean:       cleanFlag,
				Ignored:     cfg.Ignored,
				Junk:        cfg.Junk,
				Service:     service,
			})
			if err != nil {
				return err
			}

			pterm.Success.Printfln("Extracted %s into %s (%d entries, %s mode)",
				result.ArchivePath, result.Target, len(result.Moved), result.Mode)
			for _, warning := range result.Warnings {
				pterm.Warning.Println(warning)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Placement mode: subdir, flatten or respect (default from config)")
	cmd.Flags().BoolVar(&cleanFlag, "clean", false, "Remove junk entries from the destination after extraction")
	cmd.Flags().StringVar(&backendFlag, "backend", "", "Decompression backend: archives or command (default from config)")

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write the default configuration file",
		Long: `Write the effective configuration to the user config location so it
can be edited. Existing files are preserved unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			path := config.UserConfigPath()
			if err := config.WriteUserConfig(path, cfg, force); err != nil {
				return err
			}
			pterm.Success.Printfln("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

// newService builds the decompression backend from the config
func newService(backend string, cfg *config.Config) (unpack.Service, error) {
	switch strings.ToLower(backend) {
	case "archives":
		return unpack.NewArchivesService(), nil
	case "command":
		return unpack.NewCommandService(cfg.Command), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want archives or command)", backend)
	}
}
