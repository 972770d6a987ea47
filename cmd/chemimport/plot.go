/*
 * plot.go, part of chemimport.
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

	"github.com/pkg/errors"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/chemplot"
	"github.com/rmera/chemimport/histo"
	"github.com/spf13/cobra"
)

//histogramFor returns the histogram of the grid values of the first
//volume cube in root or, if there is none, of the interatomic distances
//in the last coordinate set of root. It also returns an axis label.
func histogramFor(root *chemjson.Node, bins int, cutoff float64) (*histo.Data, string, error) {
	if cubes := root.Find(chemjson.KindVolumeCube); len(cubes) > 0 {
		V, err := cubes[0].VolumeCube()
		if err != nil {
			return nil, "", err
		}
		D, err := histo.CubeValues(V, bins)
		return D, "Grid value", err
	}
	sets := root.Find(chemjson.KindAtomicCoordinates)
	if len(sets) == 0 {
		return nil, "", errors.Errorf("%s has no volume cube and no coordinates", root.Name)
	}
	C, err := sets[len(sets)-1].Coordinates()
	if err != nil {
		return nil, "", err
	}
	D, err := histo.PairDistances(C, bins, cutoff)
	return D, "Distance (A)", err
}

func newPlotCmd() *cobra.Command {
	var bins int
	var cutoff float64
	var out string
	var normalize bool
	plotCmd := &cobra.Command{
		Use:   "plot <file>",
		Short: "plot shows a histogram of cube values or interatomic distances.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := dispatcher.Load(args[0])
			if err != nil {
				return err
			}
			D, xlabel, err := histogramFor(res.Root, bins, cutoff)
			if err != nil {
				return err
			}
			if normalize {
				D.Normalize()
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), D)
				return nil
			}
			return chemplot.Histogram(D, res.Root.Name, xlabel, out)
		},
	}
	plotCmd.Flags().IntVarP(&bins, "bins", "b", 20, "number of bins")
	plotCmd.Flags().Float64Var(&cutoff, "cutoff", 0, "largest distance counted, 0 for no limit")
	plotCmd.Flags().StringVar(&out, "out", "", "save the plot to this image file (png, svg, pdf) instead of printing the histogram")
	plotCmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "normalize the histogram")
	return plotCmd
}

func init() {
	rootCmd.AddCommand(newPlotCmd())
}
