package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/bootstrap/internal/version"
	"github.com/arthur-debert/bootstrap/pkg/bootstrap"
	"github.com/arthur-debert/bootstrap/pkg/ci"
	"github.com/arthur-debert/bootstrap/pkg/config"
	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/filesystem"
	"github.com/arthur-debert/bootstrap/pkg/output"
)

func newIgnoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ignore",
		Short:   MsgIgnoreShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			added, err := bootstrap.EnsureIgnore(opts.bootstrapOptions(cmd, cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			file := cfg.Ignore.File
			switch {
			case len(added) == 0:
				fmt.Fprintf(out, MsgIgnoreUpToDate, file)
				return nil
			case opts.dryRun:
				fmt.Fprintf(out, MsgIgnoreWouldAdd, len(added), file)
			default:
				fmt.Fprintf(out, MsgIgnoreAdded, len(added), file)
			}
			for _, entry := range added {
				fmt.Fprintf(out, MsgIgnoreItem, entry)
			}
			return nil
		},
	}
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			plan, err := bootstrap.Plan(opts.bootstrapOptions(cmd, cfg))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderMarkdown(plan, opts.plain(cmd.OutOrStdout()), 0))
			return nil
		},
	}
}

func newCICmd(opts *rootOptions) *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:     "ci",
		Short:   MsgCIShort,
		Long:    MsgCILong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			workflow := ci.Generate(cfg)

			if toStdout {
				data, err := ci.Marshal(workflow)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if opts.dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), MsgWorkflowDryRun, cfg.CI.Workflow)
				return nil
			}

			root, err := filepath.Abs(opts.dir)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid project root %s", opts.dir)
			}
			path, err := ci.Write(filesystem.NewOS(), root, cfg.CI.Workflow, workflow)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgWorkflowWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, MsgFlagStdout)
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				return writeProjectConfig(cmd, opts)
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			data, err := config.ToTOML(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)
	return cmd
}

func writeProjectConfig(cmd *cobra.Command, opts *rootOptions) error {
	fsys := filesystem.NewOS()
	path := filepath.Join(opts.dir, config.ProjectConfigFiles[0])

	if _, err := fsys.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path).WithDetail("path", path)
	}
	if opts.dryRun {
		fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
		return nil
	}
	if err := fsys.WriteFile(path, []byte(config.GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).WithDetail("path", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bootstrap version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "BOOTSTRAP",
				Section: "1",
				Source:  "bootstrap " + version.Version,
				Manual:  "bootstrap manual",
			}

			if dir == "" {
				return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir).WithDetail("path", dir)
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "output-dir", "", MsgFlagManDir)
	return cmd
}
