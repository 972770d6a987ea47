/*
 * xyz.go, part of chemimport.
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
	"regexp"
	"strconv"
	"strings"

	"github.com/rmera/chemimport/chemjson"
)

const xyzBound = 10

//An atom card: symbol or atomic number followed by 3 numbers.
var xyzCard = regexp.MustCompile(`^([A-Z][a-z]?|[0-9]+)(\s+[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?){3}$`)

func sniffXYZ(lines []string) bool {
	//atom number, title and at least one card
	if len(lines) < 3 {
		return false
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || natoms <= 0 {
		return false
	}
	cards := min(natoms, xyzBound-2)
	for i := 0; i < cards && i+2 < len(lines); i++ {
		if !xyzCard.MatchString(strings.TrimSpace(lines[i+2])) {
			return false
		}
	}
	return true
}

type xyzState int

const (
	xyzInit xyzState = iota
	xyzComment
	xyzCards
)

//parseXYZ reads one or more concatenated XYZ blocks. Each block gives one
//atomic coordinates node, titled by the comment line of the block.
func parseXYZ(content, fileName string) (*chemjson.Node, error) {
	lines := splitLines(content)
	var sets []chemjson.Node
	var last, C *chemjson.AtomicCoordinates
	state := xyzInit
	natoms, blockStart := 0, 0
	title := ""
reading:
	for i, line := range lines {
		ln := i + 1
		switch state {
		case xyzInit:
			t := strings.TrimSpace(line)
			if t == "" {
				break reading
			}
			n, err := strconv.Atoi(t)
			if err != nil {
				return nil, newError(XYZ, fileName, ln, "parseXYZ", "expected number of atoms, got %q", t)
			}
			if n <= 0 {
				return nil, newError(XYZ, fileName, ln, "parseXYZ", "invalid number of atoms %d", n)
			}
			natoms, blockStart = n, ln
			state = xyzComment
		case xyzComment:
			title = strings.TrimSpace(line)
			if title == "" {
				title = fmt.Sprintf("Set@line=%d", i)
			}
			C = chemjson.NewAtomicCoordinates(min(natoms, len(lines)-i))
			state = xyzCards
		case xyzCards:
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, newError(XYZ, fileName, ln, "parseXYZ", "invalid atom card %q", strings.TrimSpace(line))
			}
			num, err := atomicNumber(fields[0])
			if err != nil {
				return nil, newError(XYZ, fileName, ln, "parseXYZ", "%s %q", InvalidAtom, fields[0])
			}
			v, err := parseVec(fields[1:4])
			if err != nil {
				return nil, newError(XYZ, fileName, ln, "parseXYZ", "%s: %s", InvalidValue, err)
			}
			C.Append(num, v[0], v[1], v[2])
			if C.Len() == natoms {
				set, err := coordsNode(title, C)
				if err != nil {
					return nil, err
				}
				sets = append(sets, set)
				last = C
				state = xyzInit
			}
		}
	}
	if state != xyzInit {
		return nil, newError(XYZ, fileName, len(lines), "parseXYZ", "%s in the block started at line %d", UnexpectedEOF, blockStart)
	}
	return moleculeRoot(fileName, 0, last, sets)
}
