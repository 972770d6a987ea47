/*
 * cfour.go, part of chemimport.
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
	"fmt"
	"strconv"
	"strings"

	"github.com/rmera/chemimport/chemjson"
)

const (
	cfourBound     = 20
	cfourSignature = "<<<     CCCCCC     CCCCCC   |||     CCCCCC     CCCCCC   >>>"
	cfourMarker    = "Z-matrix   Atomic            Coordinates (in bohr)"
)

//The signature banner is never on the first line.
func sniffCfour(lines []string) bool {
	for i := 1; i < len(lines); i++ {
		if strings.Contains(lines[i], cfourSignature) {
			return true
		}
	}
	return false
}

//parseCfour collects every coordinate table printed in a Cfour log.
//The tables look like this:
//
//	Z-matrix   Atomic            Coordinates (in bohr)
//	 Symbol    Number           X              Y              Z
//	----------------------------------------------------------------
//	    O         8         0.00000000     0.00000000    -0.13092173
//	    H         1         0.00000000    -1.49436956     1.03890604
//	----------------------------------------------------------------
func parseCfour(content, fileName string) (*chemjson.Node, error) {
	lines := splitLines(content)
	var sets []chemjson.Node
	var last *chemjson.AtomicCoordinates
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], cfourMarker) {
			continue
		}
		start := i + 1
		C := chemjson.NewAtomicCoordinates(8)
		closed := false
		for i += 3; i < len(lines); i++ {
			if strings.Contains(lines[i], "--") {
				closed = true
				break
			}
			fields := strings.Fields(lines[i])
			if len(fields) == 0 {
				continue
			}
			if len(fields) < 5 {
				return nil, newError(Cfour, fileName, i+1, "parseCfour", "invalid coordinate row, expected 5 values")
			}
			num, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, newError(Cfour, fileName, i+1, "parseCfour", "%s number %q", InvalidAtom, fields[1])
			}
			if num == 0 {
				num = chemjson.DummyAtom
			}
			v, err := parseVec(fields[2:5])
			if err != nil {
				return nil, newError(Cfour, fileName, i+1, "parseCfour", "%s: %s", InvalidValue, err)
			}
			C.Append(num, v[0]*bohr2Angstrom, v[1]*bohr2Angstrom, v[2]*bohr2Angstrom)
		}
		if !closed {
			return nil, newError(Cfour, fileName, len(lines), "parseCfour", "%s in the coordinate table started at line %d", UnexpectedEOF, start)
		}
		set, err := coordsNode(fmt.Sprintf("Set#%d", len(sets)+1), C)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
		last = C
	}
	return moleculeRoot(fileName, 0, last, sets)
}
