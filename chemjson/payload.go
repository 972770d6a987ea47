/*
 * payload.go, part of chemimport.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chemjson

import (
	"encoding/json"
	"fmt"

	v3 "github.com/rmera/chemimport/v3"
	"gonum.org/v1/gonum/floats"
)

//Atomic numbers with a special meaning.
const (
	DummyAtom       = -1 //ghost atoms, "X" or 0 in some formats.
	PlaceholderAtom = -2
)

//A ready-to-serialize container for one set of cartesian coordinates.
//The four slices are parallel, and always of the same length. Coordinates are in Angstrom.
type AtomicCoordinates struct {
	AtomicNum []int     `json:"atomic_num"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Z         []float64 `json:"z"`
}

//NewAtomicCoordinates returns an empty set with room for capacity atoms.
func NewAtomicCoordinates(capacity int) *AtomicCoordinates {
	return &AtomicCoordinates{
		AtomicNum: make([]int, 0, capacity),
		X:         make([]float64, 0, capacity),
		Y:         make([]float64, 0, capacity),
		Z:         make([]float64, 0, capacity),
	}
}

//Append adds one atom to the set.
func (C *AtomicCoordinates) Append(atomicNum int, x, y, z float64) {
	C.AtomicNum = append(C.AtomicNum, atomicNum)
	C.X = append(C.X, x)
	C.Y = append(C.Y, y)
	C.Z = append(C.Z, z)
}

//Len returns the number of atoms in the set.
func (C *AtomicCoordinates) Len() int {
	return len(C.AtomicNum)
}

//Check returns an error if the slices in C are not all of the same length.
func (C *AtomicCoordinates) Check() error {
	n := len(C.AtomicNum)
	if len(C.X) != n || len(C.Y) != n || len(C.Z) != n {
		return fmt.Errorf("corrupted coordinates: %d atomic numbers, %d/%d/%d x/y/z values", n, len(C.X), len(C.Y), len(C.Z))
	}
	return nil
}

//Matrix returns the coordinates as an Nx3 matrix. The values are copied.
func (C *AtomicCoordinates) Matrix() (*v3.Matrix, error) {
	if err := C.Check(); err != nil {
		return nil, err
	}
	return v3.FromColumns(C.X, C.Y, C.Z)
}

//Summary data for a molecule.
type Molecule struct {
	NAtoms    int    `json:"n_atoms"`
	AtomicNum []int  `json:"atomic_num"`
	Charge    int    `json:"charge"`
	Name      string `json:"name"`
}

//NewMolecule returns the summary for a molecule with the atoms in C, or
//an empty molecule if C is nil.
func NewMolecule(name string, charge int, C *AtomicCoordinates) *Molecule {
	m := &Molecule{Name: name, Charge: charge, AtomicNum: []int{}}
	if C != nil {
		m.NAtoms = C.Len()
		m.AtomicNum = append(m.AtomicNum, C.AtomicNum...)
	}
	return m
}

//Volumetric data on a grid. CubeData is indexed [i][j][k], with
//i, j and k running over the first, second and third grid axes.
type VolumeCube struct {
	Comment1    string        `json:"comment1"`
	Comment2    string        `json:"comment2"`
	BoxOrigin   []float64     `json:"box_origin"`
	StepsNumber []int         `json:"steps_number"`
	StepsSize   [][]float64   `json:"steps_size"`
	CubeData    [][][]float64 `json:"cube_data"`
}

//Len returns the number of grid points in the cube.
func (V *VolumeCube) Len() int {
	if len(V.StepsNumber) != 3 {
		return 0
	}
	return V.StepsNumber[0] * V.StepsNumber[1] * V.StepsNumber[2]
}

//Flat returns all the values in the cube, in row-major order.
func (V *VolumeCube) Flat() []float64 {
	ret := make([]float64, 0, V.Len())
	for _, plane := range V.CubeData {
		for _, row := range plane {
			ret = append(ret, row...)
		}
	}
	return ret
}

//Range returns the smallest and largest value in the cube. It returns
//an error for an empty cube.
func (V *VolumeCube) Range() (min, max float64, err error) {
	f := V.Flat()
	if len(f) == 0 {
		return 0, 0, fmt.Errorf("empty volume cube")
	}
	return floats.Min(f), floats.Max(f), nil
}

//Encode serializes a payload.
func Encode(payload any) ([]byte, error) {
	return json.Marshal(payload)
}

//Decode unserializes data into the payload pointed to by v.
func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unserialize payload: %w", err)
	}
	return nil
}
