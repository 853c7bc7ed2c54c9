package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/genomekit/genomekit/pkg/buildinfo"
)

// Execute runs the genomekit CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, loads the
// config file, and configures logging based on the --verbose flag.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configFile string
	)
	c := &CLI{}

	root := &cobra.Command{
		Use:          "genomekit",
		Short:        "genomekit retrieves and transforms genomic assemblies",
		Long:         `genomekit downloads genomic assemblies from the UCSC Genome Browser, caches them locally, and provides interval-table transforms (gap scanning, tessellation, expansion, wiggling) and sequence extraction for BED workflows.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			path := configFile
			if path == "" {
				var err error
				if path, err = configPath(); err != nil {
					return nil // no home directory, run on defaults
				}
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/genomekit/config.toml)")

	root.AddCommand(c.genomesCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.gapsCommand())
	root.AddCommand(c.filledCommand())
	root.AddCommand(c.tessellateCommand())
	root.AddCommand(c.expandCommand())
	root.AddCommand(c.wiggleCommand())
	root.AddCommand(c.sequenceCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())

	return root.ExecuteContext(ctx)
}
