// Package main provides the entry point for grove, a terminal task tracker
// that grows a tree as tasks get done.
//
// Usage:
//
//	grove [--config path] [--theme name] [--debug]
//	grove config
//	grove themes
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/grove/internal/app"
	"github.com/riordanpawley/grove/internal/cli"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:           "grove",
		Short:         "Grove - a task list that grows a tree",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default ./.grove.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Log at debug level")
	cmd.PersistentFlags().StringVarP(&opts.Theme, "theme", "t", "", "Color theme (see 'grove themes')")

	cmd.AddCommand(configCmd(&opts))
	cmd.AddCommand(themesCmd(&opts))

	return cmd
}

func runTUI(opts cli.Options) error {
	deps, err := cli.NewDependencies(opts)
	if err != nil {
		return err
	}
	defer deps.Close()

	deps.Logger.Info("starting grove", "version", Version, "theme", deps.Config.UI.Theme)

	model := app.New(deps.Config, app.Options{
		Logger:     deps.Logger,
		ConfigPath: deps.ConfigPath,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		deps.Logger.Error("program exited with error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func configCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cli.LoadConfig(*opts)
			if err != nil {
				return err
			}
			return cli.ConfigCommand(cmd.OutOrStdout(), cfg)
		},
	}
}

func themesCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cli.LoadConfig(*opts)
			if err != nil {
				return err
			}
			return cli.ThemesCommand(cmd.OutOrStdout(), cfg.UI.Theme)
		},
	}
}
