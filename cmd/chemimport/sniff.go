/*
 * sniff.go, part of chemimport.
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
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rmera/chemimport"
	"github.com/rmera/chemimport/internal/textio"
	"github.com/spf13/cobra"
)

//sniffReport prints the verdict of each format of d on content.
//It returns the number of formats that recognized it.
func sniffReport(w io.Writer, d *chemimport.Dispatcher, content []byte) int {
	yes := color.New(color.FgGreen)
	no := color.New(color.Faint)
	failed := color.New(color.FgRed)
	n := 0
	for _, f := range d.Formats() {
		ok, err := f.Sniff(bytes.NewReader(content))
		switch {
		case err != nil:
			failed.Fprintf(w, "%-15s error: %s\n", f, err)
		case ok:
			n++
			yes.Fprintf(w, "%-15s yes\n", f)
		default:
			no.Fprintf(w, "%-15s no\n", f)
		}
	}
	return n
}

var sniffCmd = &cobra.Command{
	Use:   "sniff <file>",
	Short: "sniff shows which formats recognize a file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := textio.ReadAll(args[0])
		if err != nil {
			return err
		}
		if sniffReport(cmd.OutOrStdout(), dispatcher, content) == 0 {
			return fmt.Errorf("%s is not recognized as any supported format", textio.BaseName(args[0]))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sniffCmd)
}
