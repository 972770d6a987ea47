/*
 * load.go, part of chemimport.
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
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/internal/config"
	"github.com/spf13/cobra"
)

//writeTree writes root to w as plain JSON or as a zstd-packed stream.
func writeTree(w io.Writer, root *chemjson.Node, output string) error {
	switch output {
	case config.OutputZstd:
		return chemjson.Pack(w, root)
	case config.OutputJSON:
		data, err := chemjson.Marshal(root)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	default:
		return errors.Errorf("unknown output encoding %q", output)
	}
}

//writeTreeFile is writeTree to the file at path.
func writeTreeFile(path string, root *chemjson.Node, output string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create output file")
	}
	bw := bufio.NewWriter(f)
	if err := writeTree(bw, root, output); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newLoadCmd() *cobra.Command {
	var output, out string
	loadCmd := &cobra.Command{
		Use:   "load <file>",
		Short: "load imports a file and prints its tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = cfg.Import.Output
			}
			res, err := dispatcher.Load(args[0])
			if err != nil {
				return err
			}
			if out != "" {
				return writeTreeFile(out, res.Root, output)
			}
			return writeTree(cmd.OutOrStdout(), res.Root, output)
		},
	}
	loadCmd.Flags().StringVarP(&output, "output", "o", "", "output encoding, json or zst (default from the configuration)")
	loadCmd.Flags().StringVar(&out, "out", "", "write the tree to this file instead of the standard output")
	return loadCmd
}

func init() {
	rootCmd.AddCommand(newLoadCmd())
}
