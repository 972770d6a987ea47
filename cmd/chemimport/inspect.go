/*
 * inspect.go, part of chemimport.
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
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/ptable"
	"github.com/spf13/cobra"
)

//short names for the node kinds.
var kindLabels = map[string]string{
	chemjson.KindMolecule:          "molecule",
	chemjson.KindAtomicCoordinates: "coordinates",
	chemjson.KindVolumeCube:        "cube",
	chemjson.KindUnex:              "unex",
}

func kindLabel(kind string) string {
	if l, ok := kindLabels[kind]; ok {
		return l
	}
	return kind
}

//setMass sums the masses of the atoms in nums. Dummy and unknown atoms
//count as massless.
func setMass(nums []int) float64 {
	var mass float64
	for _, n := range nums {
		if e, ok := ptable.ElementByNumber(n); ok {
			mass += e.Mass
		}
	}
	return mass
}

//inspect prints one line per node of root, indented by depth, with a
//summary of its payload. If table is true, the atoms of each coordinate
//set are also printed, one per row.
func inspect(w io.Writer, root *chemjson.Node, table bool) error {
	title := color.New(color.Bold)
	return root.Walk(func(depth int, n *chemjson.Node) error {
		indent := strings.Repeat("  ", depth)
		title.Fprintf(w, "%s%s", indent, n.Name)
		fmt.Fprintf(w, " [%s]", kindLabel(n.Kind))
		switch n.Kind {
		case chemjson.KindMolecule:
			if len(n.Data) == 0 {
				break
			}
			m, err := n.Molecule()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " atoms: %d charge: %d", m.NAtoms, m.Charge)
		case chemjson.KindAtomicCoordinates:
			C, err := n.Coordinates()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " atoms: %d", C.Len())
			if C.Len() == 0 {
				break
			}
			fmt.Fprintf(w, " mass: %.3f", setMass(C.AtomicNum))
			M, err := C.Matrix()
			if err != nil {
				return err
			}
			c := M.Centroid()
			fmt.Fprintf(w, " centroid: %.4f %.4f %.4f", c[0], c[1], c[2])
			low, high := M.Extent()
			fmt.Fprintf(w, " size: %.4f %.4f %.4f", high[0]-low[0], high[1]-low[1], high[2]-low[2])
			if table {
				fmt.Fprintln(w)
				for i, num := range C.AtomicNum {
					r := M.VecView(i)
					fmt.Fprintf(w, "%s  %-4d %-3s %12.6f %12.6f %12.6f\n", indent, i+1, ptable.Label(num), r.At(0, 0), r.At(0, 1), r.At(0, 2))
				}
				return nil
			}
		case chemjson.KindVolumeCube:
			V, err := n.VolumeCube()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " grid: %v points: %d", V.StepsNumber, V.Len())
			if min, max, err := V.Range(); err == nil {
				fmt.Fprintf(w, " range: %g to %g", min, max)
			}
		}
		fmt.Fprintln(w)
		return nil
	})
}

func newInspectCmd() *cobra.Command {
	var table bool
	inspectCmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "inspect imports a file and prints a summary of its tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := dispatcher.Load(args[0])
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Root.Name, res.Format)
			return inspect(cmd.OutOrStdout(), res.Root, table)
		},
	}
	inspectCmd.Flags().BoolVarP(&table, "table", "t", false, "print the atoms of each coordinate set")
	return inspectCmd
}

func init() {
	rootCmd.AddCommand(newInspectCmd())
}
