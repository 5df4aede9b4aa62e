// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/ndarray/internal/document"
	"github.com/born-ml/ndarray/internal/reduce"
)

func newReduceCmd(a *app) *cobra.Command {
	var (
		opNames []string
		axis    int
		jobs    int
	)

	cmd := &cobra.Command{
		Use:   "reduce [file...]",
		Short: "Reduce arrays over all elements or along an axis",
		Long: `Reads array documents from each file ("-" for stdin, at most once) and
writes one result per document and operation as YAML. Files are processed
concurrently.

Reduction failures such as an out-of-range axis or an empty array are
reported in the error field of the affected result and the run continues.
A file or document that cannot be read or decoded (unknown dtype, ragged
nesting, values that do not fit the dtype) fails the whole run and nothing
is written.

Example:
  ndarray reduce --op max,mean --axis 0 matrix.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := make([]reduce.Op, 0, len(opNames))
			for _, name := range opNames {
				op, err := reduce.ParseOp(name)
				if err != nil {
					return err
				}
				ops = append(ops, op)
			}

			if err := checkStdin(args); err != nil {
				return err
			}

			ax := reduce.All
			if cmd.Flags().Changed("axis") {
				ax = reduce.Along(axis)
			}

			results, err := a.reduceFiles(cmd.Context(), cmd.InOrStdin(), args, ops, ax, jobs)
			if err != nil {
				return err
			}
			return document.EncodeResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringSliceVar(&opNames, "op", []string{"max", "min", "mean"}, "operations to apply (max, min, mean)")
	cmd.Flags().IntVar(&axis, "axis", 0, "axis to reduce along (default: all elements)")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "files processed concurrently")
	return cmd
}

// reduceFiles reduces every document of every file. Results keep file order.
func (a *app) reduceFiles(ctx context.Context, stdin io.Reader, paths []string,
	ops []reduce.Op, axis reduce.Axis, jobs int,
) ([]document.Result, error) {
	perFile := make([][]document.Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			docs, err := readDocuments(path, stdin)
			if err != nil {
				return err
			}

			var results []document.Result
			for k, doc := range docs {
				h, err := lookup(doc)
				if err != nil {
					return fmt.Errorf("%s: %w", sourceName(path, k, doc), err)
				}
				r, err := h.reduce(doc, job{
					source: sourceName(path, k, doc),
					ops:    ops,
					axis:   axis,
					logger: a.logger,
				})
				if err != nil {
					return err
				}
				results = append(results, r...)
			}
			perFile[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []document.Result
	for _, results := range perFile {
		all = append(all, results...)
	}
	a.logger.Info("reduced arrays",
		zap.Int("files", len(paths)),
		zap.Int("results", len(all)))
	return all, nil
}

// checkStdin rejects paths that name stdin more than once.
func checkStdin(paths []string) error {
	n := 0
	for _, p := range paths {
		if p == "-" {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("stdin (\"-\") given %d times; it can be read only once", n)
	}
	return nil
}

// readDocuments decodes every document of path, or of stdin for "-".
func readDocuments(path string, stdin io.Reader) ([]*document.Document, error) {
	if path == "-" {
		return document.DecodeAll(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := document.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// sourceName labels a document by its name, or by file and position.
func sourceName(path string, index int, doc *document.Document) string {
	if doc.Name != "" {
		return doc.Name
	}
	return fmt.Sprintf("%s#%d", path, index)
}
