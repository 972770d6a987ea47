/*
 * batch.go, part of chemimport.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rmera/chemimport"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/internal/config"
	"github.com/rmera/chemimport/internal/textio"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type batchResult struct {
	File    string
	Format  string
	Sets    int //number of coordinate sets in the tree
	Elapsed time.Duration
	Err     error
}

//runBatch imports files with d, with at most workers files being
//imported at the same time. If outDir is not empty, each tree is written
//there, encoded as output. Results are in the same order as files.
func runBatch(ctx context.Context, d *chemimport.Dispatcher, files []string, workers int, outDir, output string) []batchResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]batchResult, len(files))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			results[i] = batchResult{File: f, Err: err}
			continue
		}
		select {
		case <-ctx.Done():
			results[i] = batchResult{File: f, Err: ctx.Err()}
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, f string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = importOne(d, f, outDir, output)
		}(i, f)
	}
	wg.Wait()
	return results
}

func importOne(d *chemimport.Dispatcher, file, outDir, output string) batchResult {
	r := batchResult{File: file}
	start := time.Now()
	res, err := d.Load(file)
	r.Elapsed = time.Since(start)
	if err != nil {
		r.Err = err
		return r
	}
	r.Format = res.Format.String()
	r.Sets = len(res.Root.Find(chemjson.KindAtomicCoordinates))
	if outDir == "" {
		return r
	}
	name := textio.BaseName(file) + ".json"
	if output == config.OutputZstd {
		name += textio.ZstdSuffix
	}
	if err := writeTreeFile(filepath.Join(outDir, name), res.Root, output); err != nil {
		r.Err = errors.Wrapf(err, "unable to write tree for %s", file)
	}
	return r
}

//batchReport prints one line per result and a summary. It returns the
//number of failed files.
func batchReport(w io.Writer, results []batchResult) int {
	ok := color.New(color.FgGreen)
	failed := color.New(color.FgRed)
	for _, r := range results {
		if r.Err != nil {
			failed.Fprintf(w, "FAILED %s: %s\n", r.File, r.Err)
			continue
		}
		ok.Fprintf(w, "ok     %s", r.File)
		fmt.Fprintf(w, " %s, %d set(s), %s\n", r.Format, r.Sets, r.Elapsed.Round(time.Microsecond))
	}
	good := lo.Filter(results, func(r batchResult, _ int) bool { return r.Err == nil })
	byFormat := lo.GroupBy(good, func(r batchResult) string { return r.Format })
	names := lo.Keys(byFormat)
	sort.Strings(names)
	counts := lo.Map(names, func(n string, _ int) string { return fmt.Sprintf("%s: %d", n, len(byFormat[n])) })
	nfailed := len(results) - len(good)
	fmt.Fprintf(w, "%d file(s), %d imported, %d failed", len(results), len(good), nfailed)
	if len(counts) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(counts, ", "))
	}
	fmt.Fprintln(w)
	return nfailed
}

func newBatchCmd() *cobra.Command {
	var workers int
	var outDir, output string
	batchCmd := &cobra.Command{
		Use:   "batch <files...>",
		Short: "batch imports many files concurrently.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers == 0 {
				workers = cfg.Import.Workers
			}
			if output == "" {
				output = cfg.Import.Output
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
					return errors.Wrap(err, "unable to create output directory")
				}
			}
			results := runBatch(cmd.Context(), dispatcher, args, workers, outDir, output)
			if n := batchReport(cmd.OutOrStdout(), results); n > 0 {
				return fmt.Errorf("%d file(s) could not be imported", n)
			}
			return nil
		},
	}
	batchCmd.Flags().IntVarP(&workers, "workers", "w", 0, "files imported at the same time (default from the configuration)")
	batchCmd.Flags().StringVar(&outDir, "out-dir", "", "write each tree to this directory")
	batchCmd.Flags().StringVarP(&output, "output", "o", "", "output encoding for --out-dir, json or zst")
	return batchCmd
}

func init() {
	rootCmd.AddCommand(newBatchCmd())
}
