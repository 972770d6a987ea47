/*
 * histogram.go, part of chemimport
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemplot draws plots of the data in imported files.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/chemimport/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//HistogramPlot returns a bar plot of D, one bar per bin.
func HistogramPlot(D *histo.Data, title, xlabel string) (*plot.Plot, error) {
	div := D.Dividers()
	h := D.View()
	if len(h) == 0 || len(div) != len(h)+1 {
		return nil, fmt.Errorf("chemplot: ill-formed histogram, %d dividers for %d bins", len(div), len(h))
	}
	ylabel := "Count"
	if D.Normalized() {
		ylabel = "Frequency"
	}
	p := basicPlot(title, xlabel, ylabel)
	bins := make([]plotter.HistogramBin, len(h))
	for i, v := range h {
		bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: v}
	}
	p.Add(&plotter.Histogram{
		Bins:      bins,
		Width:     div[1] - div[0],
		FillColor: color.RGBA{R: 70, G: 130, B: 180, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	})
	return p, nil
}

//Histogram plots D and saves it to filename. The image format is taken
//from the extension of filename (png, svg, pdf, eps, jpg or tiff).
func Histogram(D *histo.Data, title, xlabel, filename string) error {
	p, err := HistogramPlot(D, title, xlabel)
	if err != nil {
		return err
	}
	//here I intentionally shadow err.
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot: unable to save %s: %w", filename, err)
	}
	return nil
}
