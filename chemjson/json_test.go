/*
 * json_test.go, part of chemimport.
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
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCoords() *AtomicCoordinates {
	C := NewAtomicCoordinates(3)
	C.Append(8, 0, 0, 0)
	C.Append(1, 0.1+0.2, -1e-300, math.Pi)
	C.Append(DummyAtom, math.SmallestNonzeroFloat64, math.MaxFloat64, -0.529177210903)
	return C
}

func TestCoordinatesRoundTrip(Te *testing.T) {
	C := sampleCoords()
	data, err := Encode(C)
	require.NoError(Te, err)
	D := new(AtomicCoordinates)
	require.NoError(Te, Decode(data, D))
	assert.Equal(Te, C.AtomicNum, D.AtomicNum)
	for i := range C.X {
		assert.Equal(Te, math.Float64bits(C.X[i]), math.Float64bits(D.X[i]))
		assert.Equal(Te, math.Float64bits(C.Y[i]), math.Float64bits(D.Y[i]))
		assert.Equal(Te, math.Float64bits(C.Z[i]), math.Float64bits(D.Z[i]))
	}
}

func TestCoordinatesMatrix(Te *testing.T) {
	C := sampleCoords()
	M, err := C.Matrix()
	require.NoError(Te, err)
	assert.Equal(Te, 3, M.NVecs())
	for i := range C.X {
		assert.Equal(Te, C.X[i], M.At(i, 0))
		assert.Equal(Te, C.Z[i], M.At(i, 2))
	}

	broken := &AtomicCoordinates{AtomicNum: []int{1}, X: []float64{0}}
	assert.Error(Te, broken.Check())
	_, err = broken.Matrix()
	assert.Error(Te, err)
}

func TestNodeTree(Te *testing.T) {
	C := sampleCoords()
	set, err := NewNode("Set#1", KindAtomicCoordinates, C)
	require.NoError(Te, err)
	group, err := NewNode("water", KindMolecule, nil, set)
	require.NoError(Te, err)
	root, err := NewNode("file.out", KindUnex, nil, group)
	require.NoError(Te, err)

	assert.Empty(Te, root.Data)
	assert.NotNil(Te, set.Children)
	m, err := group.Molecule()
	assert.NoError(Te, err)
	assert.Nil(Te, m)

	sets := root.Find(KindAtomicCoordinates)
	require.Len(Te, sets, 1)
	D, err := sets[0].Coordinates()
	require.NoError(Te, err)
	assert.Equal(Te, C.AtomicNum, D.AtomicNum)

	var names []string
	var depths []int
	root.Walk(func(depth int, n *Node) error {
		names = append(names, n.Name)
		depths = append(depths, depth)
		return nil
	})
	assert.Equal(Te, []string{"file.out", "water", "Set#1"}, names)
	assert.Equal(Te, []int{0, 1, 2}, depths)

	_, err = root.Coordinates()
	assert.Error(Te, err)
	_, err = root.VolumeCube()
	assert.Error(Te, err)
}

func TestPackUnpack(Te *testing.T) {
	set, err := NewNode("Set#1", KindAtomicCoordinates, sampleCoords())
	require.NoError(Te, err)
	root, err := NewNode("mol.xyz", KindMolecule, NewMolecule("mol.xyz", 0, sampleCoords()), set)
	require.NoError(Te, err)

	var buf bytes.Buffer
	require.NoError(Te, Pack(&buf, &root))
	back, err := Unpack(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, root, *back)

	data, err := Marshal(&root)
	require.NoError(Te, err)
	back, err = Unmarshal(data)
	require.NoError(Te, err)
	assert.Equal(Te, root, *back)
	mol, err := back.Molecule()
	require.NoError(Te, err)
	assert.Equal(Te, 3, mol.NAtoms)
	assert.Equal(Te, []int{8, 1, -1}, mol.AtomicNum)
}

func TestVolumeCubeRange(Te *testing.T) {
	V := &VolumeCube{
		StepsNumber: []int{1, 2, 2},
		CubeData:    [][][]float64{{{1, -2}, {3.5, 0}}},
	}
	assert.Equal(Te, 4, V.Len())
	min, max, err := V.Range()
	require.NoError(Te, err)
	assert.Equal(Te, -2.0, min)
	assert.Equal(Te, 3.5, max)
	_, _, err = new(VolumeCube).Range()
	assert.Error(Te, err)
}

type attemptsErr struct{}

func (attemptsErr) Error() string      { return "nothing worked" }
func (attemptsErr) Attempts() []string { return []string{"XYZ: bad", "Cfour: worse"} }

func TestError(Te *testing.T) {
	J := NewError("a.log", "Load", attemptsErr{})
	assert.True(Te, J.IsError)
	assert.Equal(Te, []string{"XYZ: bad", "Cfour: worse"}, J.Attempts)
	assert.Equal(Te, []string{"handler"}, J.Decorate("handler"))
	assert.Contains(Te, string(J.Marshal()), "nothing worked")

	J = NewError("", "Load", errors.New("plain"))
	assert.Nil(Te, J.Attempts)
}
