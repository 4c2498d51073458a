package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bootstrap/internal/version"
	"github.com/arthur-debert/bootstrap/pkg/bootstrap"
	"github.com/arthur-debert/bootstrap/pkg/config"
	"github.com/arthur-debert/bootstrap/pkg/logging"
	"github.com/arthur-debert/bootstrap/pkg/output"
	"github.com/arthur-debert/bootstrap/pkg/output/styles"
)

// rootOptions holds the global flags
type rootOptions struct {
	verbosity  int
	dryRun     bool
	dir        string
	configFile string
	noColor    bool
	format     string
	stylesFile string
}

// load reads the layered configuration for the selected project
func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.dir, o.configFile)
}

// plain reports whether output written to w must be unstyled
func (o *rootOptions) plain(w io.Writer) bool {
	if o.noColor {
		return true
	}
	format, err := output.ParseFormat(o.format)
	if err != nil {
		return true
	}
	if f, ok := w.(*os.File); ok {
		return format.Resolve(f) != output.FormatTerminal
	}
	return format != output.FormatTerminal
}

// bootstrapOptions builds the orchestrator options for cmd
func (o *rootOptions) bootstrapOptions(cmd *cobra.Command, cfg *config.Config) bootstrap.Options {
	return bootstrap.Options{
		Root:     o.dir,
		Config:   cfg,
		DryRun:   o.dryRun,
		Reporter: output.NewStepPrinter(cmd.OutOrStdout(), o.plain(cmd.OutOrStdout())),
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "bootstrap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if _, err := output.ParseFormat(opts.format); err != nil {
				return err
			}
			if opts.stylesFile != "" {
				return styles.LoadStyles(opts.stylesFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.stylesFile, "styles", "", MsgFlagStyles)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newIgnoreCmd(opts))
	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newCICmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// runBootstrap runs the full pipeline and packages on success
func runBootstrap(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.GetLogger("cmd.bootstrap")

	cfg, err := opts.load()
	if err != nil {
		return err
	}

	report, err := bootstrap.Run(cmd.Context(), opts.bootstrapOptions(cmd, cfg))
	if err != nil {
		return err
	}
	logger.Info().
		Int("steps", len(report.Steps)).
		Bool("packaged", report.Packaged()).
		Msg("Bootstrap finished")

	out := cmd.OutOrStdout()
	switch {
	case opts.dryRun:
		fmt.Fprintln(out, MsgDryRunNotice)
	case report.Package != nil && report.Package.Skipped:
		fmt.Fprintln(out, MsgPackagingDisabled)
	default:
		fmt.Fprintf(out, MsgPackaged, cfg.Package.Name, cfg.Package.OutputDir)
	}
	return nil
}
