/*
 * mdl.go, part of chemimport.
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
	"github.com/rmera/chemimport/ptable"
)

const mdlBound = 4

func sniffMDL(lines []string) bool {
	return len(lines) >= 4 && strings.Contains(lines[3], " V2000")
}

type mdlState int

const (
	mdlInit mdlState = iota
	mdlControl
	mdlAtom
)

//charge codes in the atom block. 4 is a doublet radical, with no charge.
var mdlCharges = map[int]int{1: 3, 2: 2, 3: 1, 4: 0, 5: -1, 6: -2, 7: -3}

//mdlCounts reads the number of atoms and bonds from the counts line,
//by columns (aaabbb...) if possible, else by whitespace-separated tokens.
func mdlCounts(line string) (atoms, bonds int, ok bool) {
	if len(line) >= 6 {
		a, err1 := strconv.Atoi(strings.TrimSpace(line[0:3]))
		b, err2 := strconv.Atoi(strings.TrimSpace(line[3:6]))
		if err1 == nil && err2 == nil {
			return a, b, true
		}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(fields[0])
	b, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}

//parseMDL reads the header and the atom block of an MDL Mol V2000 file.
//The bond block and everything after it is ignored.
func parseMDL(content, fileName string) (*chemjson.Node, error) {
	lines := splitLines(content)
	state := mdlInit
	title := ""
	natoms, charge := 0, 0
	var C *chemjson.AtomicCoordinates
reading:
	for i, line := range lines {
		ln := i + 1
		switch state {
		case mdlInit:
			//the first non-empty header line
			if title == "" {
				title = strings.TrimSpace(line)
			}
			if ln == 3 {
				state = mdlControl
			}
		case mdlControl:
			var bonds int
			var ok bool
			natoms, bonds, ok = mdlCounts(line)
			if !ok {
				return nil, newError(MDLMolV2000, fileName, ln, "parseMDL", "invalid counts line, expected number of atoms and bonds")
			}
			if natoms <= 0 {
				return nil, newError(MDLMolV2000, fileName, ln, "parseMDL", "invalid number of atoms %d", natoms)
			}
			if bonds < 0 {
				return nil, newError(MDLMolV2000, fileName, ln, "parseMDL", "invalid number of bonds %d", bonds)
			}
			C = chemjson.NewAtomicCoordinates(min(natoms, len(lines)))
			state = mdlAtom
		case mdlAtom:
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, newError(MDLMolV2000, fileName, ln, "parseMDL", "invalid atom line, expected coordinates and symbol")
			}
			num, err := ptable.SymbolToAtomicNumber(fields[3])
			if err != nil {
				return nil, newError(MDLMolV2000, fileName, ln, "parseMDL", "%s symbol %q", InvalidAtom, fields[3])
			}
			v, err := parseVec(fields[0:3])
			if err != nil {
				return nil, newError(MDLMolV2000, fileName, ln, "parseMDL", "%s: %s", InvalidValue, err)
			}
			//fields[4] is the mass difference. Unknown charge codes are ignored.
			if len(fields) > 5 {
				if code, err := strconv.Atoi(fields[5]); err == nil {
					charge += mdlCharges[code]
				}
			}
			C.Append(num, v[0], v[1], v[2])
			if C.Len() == natoms {
				break reading
			}
		}
	}
	switch {
	case state != mdlAtom:
		return nil, newError(MDLMolV2000, fileName, len(lines), "parseMDL", "%s, expected the header and the counts line", UnexpectedEOF)
	case C.Len() < natoms:
		return nil, newError(MDLMolV2000, fileName, len(lines), "parseMDL", "%s, %d atoms expected, %d found", UnexpectedEOF, natoms, C.Len())
	}
	if title == "" {
		title = fileName
	}
	set, err := coordsNode(title, C)
	if err != nil {
		return nil, err
	}
	return moleculeRoot(fileName, charge, C, []chemjson.Node{set})
}
