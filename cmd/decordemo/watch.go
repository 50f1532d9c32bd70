// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/config"
)

func newWatchCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the configuration file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				return errors.New("watch needs --config")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rerender := func(s *config.Store) {
				if err := renderOnce(&f, s); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "render: %v\n", err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.out)
			}
			s, err := loadStore()
			if err != nil {
				return err
			}
			rerender(s)

			err = config.Watch(ctx, configPath, func(s *config.Store, err error) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "reload: %v\n", err)
					return
				}
				rerender(s)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	f.register(cmd)
	return cmd
}

func renderOnce(f *renderFlags, s *config.Store) error {
	steps, err := parseScript(f.input)
	if err != nil {
		return err
	}
	sc, err := f.build(func(r decor.Renderer) (*decor.Manager, error) {
		return buildManager(s, r)
	})
	if err != nil {
		return err
	}
	defer sc.close()
	replay(sc.d, steps)
	if err := sc.draw(); err != nil {
		return err
	}
	return sc.r.SavePNG(f.out)
}
