// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command decordemo renders window decorations into PNG files with the
// software host. It loads a decor configuration, picks the theme a window
// would get and can replay pointer input against the decoration.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/config"
	"github.com/gogpu/decor/theme"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "decordemo",
		Short:         "Render window decorations with the software host",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				decor.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (.toml or .yaml); built-in defaults when empty")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newRenderCmd(), newCheckCmd(), newWatchCmd(), newDefaultsCmd())
	return root
}

func loadStore() (*config.Store, error) {
	if configPath == "" {
		return config.Defaults(), nil
	}
	return config.Load(configPath)
}

// buildManager resolves the default and extra themes of s into a manager
// drawing through r.
func buildManager(s *config.Store, r decor.Renderer) (*decor.Manager, error) {
	def, err := s.Resolve(config.GlobalSection)
	if err != nil {
		return nil, err
	}
	extra := s.ExtraThemeOptions()
	opts := make([]decor.ManagerOption, 0, len(extra))
	for _, e := range extra {
		opts = append(opts, decor.WithExtraTheme(e.Name, theme.New(e.Options), e.UsesIf))
	}
	return decor.NewManager(r, theme.New(def), opts...), nil
}

func newDefaultsCmd() *cobra.Command {
	var yamlOut bool
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := config.FormatTOML
			if yamlOut {
				f = config.FormatYAML
			}
			data, err := config.Defaults().Encode(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "print YAML instead of TOML")
	return cmd
}
