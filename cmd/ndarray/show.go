// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/ndarray/internal/ndarray"
)

func newShowCmd(a *app) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "show [file...]",
		Short: "Print arrays as nested brackets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkStdin(args); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				docs, err := readDocuments(path, cmd.InOrStdin())
				if err != nil {
					return err
				}
				for k, doc := range docs {
					name := sourceName(path, k, doc)
					h, err := lookup(doc)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					text, err := h.format(doc, precision)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					a.logger.Debug("formatted array", zap.String("source", name))
					fmt.Fprintf(out, "%s: %s\n", name, text)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&precision, "precision", ndarray.DefaultPrecision, "decimals for float elements")
	return cmd
}
