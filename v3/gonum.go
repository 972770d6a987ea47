/*
 * gonum.go, part of chemimport.
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
	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space. Within the package a "vector" is a
// row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// VecView returns a view of the ith vector of the matrix.
// Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Error is the error type for the package. It mirrors the decorated errors
// returned by the chemimport parsers.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrNotXx3Matrix = PanicMsg("chemimport/v3: A Matrix should have 3 columns")
