/*
 * cube.go, part of chemimport.
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

package formats

import (
	"strconv"
	"strings"

	"github.com/rmera/chemimport/chemjson"
)

const cubeBound = 10

//CubeMolName is the name of the atomic coordinates node under a volume cube.
const CubeMolName = "CubeMol"

//countAndVec checks that fields starts with an integer followed by 3 numbers.
func countAndVec(fields []string) (int, [3]float64, bool) {
	if len(fields) < 4 {
		return 0, [3]float64{}, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, [3]float64{}, false
	}
	v, err := parseVec(fields[1:4])
	if err != nil {
		return 0, [3]float64{}, false
	}
	return n, v, true
}

func sniffCube(lines []string) bool {
	//2 comments, the atom/origin line and 3 grid lines
	if len(lines) < 6 {
		return false
	}
	for _, l := range lines[2:6] {
		if _, _, ok := countAndVec(strings.Fields(l)); !ok {
			return false
		}
	}
	return true
}

//parseCube reads a Gaussian cube file. Atom coordinates are converted from bohr.
//Negative grid counts (Angstrom grids in Gaussian) are rejected.
//The volumetric values are stored as they are.
//See http://paulbourke.net/dataformats/cube/ and http://gaussian.com/cubegen/
func parseCube(content, fileName string) (*chemjson.Node, error) {
	lines := splitLines(content)
	if len(lines) < 6 {
		return nil, newError(GaussianCube, fileName, len(lines), "parseCube", "%s, expected 2 comments, the atom count line and 3 grid lines", UnexpectedEOF)
	}
	V := &chemjson.VolumeCube{
		Comment1:    strings.TrimSpace(lines[0]),
		Comment2:    strings.TrimSpace(lines[1]),
		StepsNumber: make([]int, 3),
		StepsSize:   make([][]float64, 3),
	}

	header := strings.Fields(lines[2])
	natoms, origin, ok := countAndVec(header)
	if !ok {
		return nil, newError(GaussianCube, fileName, 3, "parseCube", "expected number of atoms and 3 origin coordinates")
	}
	V.BoxOrigin = origin[:]
	if len(header) > 4 {
		nval, err := strconv.Atoi(header[4])
		if err != nil {
			return nil, newError(GaussianCube, fileName, 3, "parseCube", "invalid number of values per voxel %q", header[4])
		}
		if nval > 1 {
			return nil, newError(GaussianCube, fileName, 3, "parseCube", "unsupported number of values per voxel %d", nval)
		}
	}
	dsetIDs := natoms < 0
	if dsetIDs {
		natoms = -natoms
	}

	for i := 0; i < 3; i++ {
		n, step, ok := countAndVec(strings.Fields(lines[3+i]))
		if !ok {
			return nil, newError(GaussianCube, fileName, 4+i, "parseCube", "expected grid count and 3 step values")
		}
		if n == 0 {
			return nil, newError(GaussianCube, fileName, 4+i, "parseCube", "grid count can't be zero")
		}
		if n < 0 {
			return nil, newError(GaussianCube, fileName, 4+i, "parseCube", "negative grid count %d, grids in Angstrom are not supported", n)
		}
		V.StepsNumber[i] = n
		V.StepsSize[i] = step[:]
	}

	ln := 6 //lines consumed so far
	C := chemjson.NewAtomicCoordinates(max(0, min(natoms, len(lines))))
	for i := 0; i < natoms; i++ {
		if ln >= len(lines) {
			return nil, newError(GaussianCube, fileName, ln, "parseCube", "%s, %d atoms expected, %d found", UnexpectedEOF, natoms, i)
		}
		fields := strings.Fields(lines[ln])
		ln++
		if len(fields) < 5 {
			return nil, newError(GaussianCube, fileName, ln, "parseCube", "invalid atom line, expected 5 values")
		}
		num, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, newError(GaussianCube, fileName, ln, "parseCube", "%s %q", InvalidAtom, fields[0])
		}
		//fields[1] is the nuclear charge, which we don't need.
		v, err := parseVec(fields[2:5])
		if err != nil {
			return nil, newError(GaussianCube, fileName, ln, "parseCube", "%s: %s", InvalidValue, err)
		}
		C.Append(num, v[0]*bohr2Angstrom, v[1]*bohr2Angstrom, v[2]*bohr2Angstrom)
	}

	if dsetIDs {
		if ln >= len(lines) {
			return nil, newError(GaussianCube, fileName, ln, "parseCube", "%s, expected the data set identifiers line", UnexpectedEOF)
		}
		fields := strings.Fields(lines[ln])
		ln++
		if len(fields) > 0 {
			nids, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, newError(GaussianCube, fileName, ln, "parseCube", "invalid number of data set identifiers %q", fields[0])
			}
			if nids != 1 {
				return nil, newError(GaussianCube, fileName, ln, "parseCube", "unsupported number of identifiers per voxel %d", nids)
			}
		}
	}

	n1, n2, n3 := V.StepsNumber[0], V.StepsNumber[1], V.StepsNumber[2]
	var flat []float64
	for ; ln < len(lines); ln++ {
		for _, tok := range strings.Fields(lines[ln]) {
			f, err := parseFloat(tok)
			if err != nil {
				return nil, newError(GaussianCube, fileName, ln+1, "parseCube", "invalid volumetric data value %q", tok)
			}
			flat = append(flat, f)
		}
	}
	//the float product can't overflow.
	if float64(n1)*float64(n2)*float64(n3) != float64(len(flat)) {
		return nil, newError(GaussianCube, fileName, len(lines), "parseCube", "mismatch in volumetric data: expected %d x %d x %d points, found %d", n1, n2, n3, len(flat))
	}
	V.CubeData = make([][][]float64, n1)
	idx := 0
	for i := range V.CubeData {
		plane := make([][]float64, n2)
		for j := range plane {
			plane[j] = flat[idx : idx+n3 : idx+n3]
			idx += n3
		}
		V.CubeData[i] = plane
	}

	mol, err := coordsNode(CubeMolName, C)
	if err != nil {
		return nil, err
	}
	root, err := chemjson.NewNode(fileName, chemjson.KindVolumeCube, V, mol)
	if err != nil {
		return nil, err
	}
	return &root, nil
}
