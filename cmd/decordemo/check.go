// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/decor/config"
	"github.com/gogpu/decor/match"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every theme and matcher expression of the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			return check(cmd.OutOrStdout(), s)
		},
	}
}

// check reports each theme of s on w and returns the joined problems.
func check(w io.Writer, s *config.Store) error {
	var errs []error
	names := append([]string{config.GlobalSection}, s.ExtraThemes()...)
	for _, name := range names {
		o, err := s.Resolve(name)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintf(w, "%-12s FAIL\n", name)
			continue
		}
		exprs := map[string]string{"ignore_views": o.IgnoreViews}
		if name != config.GlobalSection {
			exprs = map[string]string{"uses_if": s.UsesIf(name)}
		}
		for key, src := range exprs {
			if _, err := match.Parse(src); err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: %w", name, key, err))
			}
		}
		fmt.Fprintf(w, "%-12s ok (border %s, radius %d, layout %q)\n", name, o.BorderSize, o.CornerRadius, o.Layout)
	}
	return errors.Join(errs...)
}
