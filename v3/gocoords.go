/*
 * gocoords.go, part of chemimport.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// FromColumns builds a Matrix from three parallel slices of x, y and z values.
// The slices must have the same, non-zero, length.
func FromColumns(x, y, z []float64) (*Matrix, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, Error{"x, y and z slices differ in length", []string{"FromColumns"}}
	}
	if len(x) == 0 {
		return nil, Error{"no vectors given", []string{"FromColumns"}}
	}
	F := Zeros(len(x))
	F.SetCol(0, x)
	F.SetCol(1, y)
	F.SetCol(2, z)
	return F, nil
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() [3]float64 {
	var ret [3]float64
	n := float64(F.NVecs())
	col := make([]float64, F.NVecs())
	for i := 0; i < 3; i++ {
		mat.Col(col, i, F)
		ret[i] = floats.Sum(col) / n
	}
	return ret
}

// Extent returns, for each axis, the minimum and maximum coordinate in F.
func (F *Matrix) Extent() (min, max [3]float64) {
	col := make([]float64, F.NVecs())
	for i := 0; i < 3; i++ {
		mat.Col(col, i, F)
		min[i] = floats.Min(col)
		max[i] = floats.Max(col)
	}
	return min, max
}
