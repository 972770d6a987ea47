/*
 * unex.go, part of chemimport.
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
	"github.com/rmera/chemimport/ptable"
)

const (
	unexBound   = 1
	unex1Marker = "> Cartesian coordinates of all atoms (Angstroms) in"
	unex2Marker = "Cartesian coordinates (Angstroms) of atoms in"

	//Versions from this one on use the 2.x layout.
	Unex2Version = 2_000_000
)

var unexVersion = regexp.MustCompile(`^([0-9]+)\.([0-9]+)-([0-9]+)-([a-z0-9]+)$`)

//DecodeVersion reads the program version from the first line of a UNEX
//output ("UNEX 1.12-3-abc ...") and folds it into a single integer,
//major*1000000 + minor*10000 + patch. It returns false if line has no version.
func DecodeVersion(line string) (int, bool) {
	if !strings.HasPrefix(strings.TrimSpace(line), "UNEX") {
		return 0, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}
	m := unexVersion.FindStringSubmatch(fields[1])
	if m == nil {
		return 0, false
	}
	var parts [3]int
	for i := range parts {
		var err error
		parts[i], err = strconv.Atoi(m[i+1])
		if err != nil {
			return 0, false
		}
	}
	return parts[0]*1_000_000 + parts[1]*10_000 + parts[2], true
}

func sniffUNEX(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	_, ok := DecodeVersion(lines[0])
	return ok
}

//unexTree groups coordinate sets by molecule name, keeping the order in
//which each molecule was first seen.
type unexTree struct {
	names []string
	sets  map[string][]chemjson.Node
}

func newUnexTree() *unexTree {
	return &unexTree{sets: make(map[string][]chemjson.Node)}
}

//add appends C as the next Set#N of the molecule name.
func (T *unexTree) add(name string, C *chemjson.AtomicCoordinates) error {
	prev, ok := T.sets[name]
	if !ok {
		T.names = append(T.names, name)
	}
	set, err := coordsNode(fmt.Sprintf("Set#%d", len(prev)+1), C)
	if err != nil {
		return err
	}
	T.sets[name] = append(prev, set)
	return nil
}

func (T *unexTree) root(fileName string) (*chemjson.Node, error) {
	groups := make([]chemjson.Node, 0, len(T.names))
	for _, name := range T.names {
		g, err := chemjson.NewNode(name, chemjson.KindMolecule, nil, T.sets[name]...)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	root, err := chemjson.NewNode(fileName, chemjson.KindUnex, nil, groups...)
	if err != nil {
		return nil, err
	}
	return &root, nil
}

//unexRows reads the rows of a native UNEX coordinate table, starting at
//lines[from], until a "--" line. Rows that can't be read are skipped.
//It returns the index of the closing line, or len(lines).
func unexRows(lines []string, from int) (*chemjson.AtomicCoordinates, int) {
	C := chemjson.NewAtomicCoordinates(8)
	i := from
	for ; i < len(lines); i++ {
		if strings.Contains(lines[i], "--") {
			break
		}
		fields := strings.Fields(lines[i])
		if len(fields) < 7 {
			continue
		}
		num, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		v, err := parseVec(fields[4:7])
		if err != nil {
			continue
		}
		C.Append(num, v[0], v[1], v[2])
	}
	return C, i
}

//parseUNEX reads the version from the first line, and uses the 1.x or 2.x
//layout accordingly.
func parseUNEX(content, fileName string) (*chemjson.Node, error) {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil, newError(UNEX, fileName, 1, "parseUNEX", "%s, expected the UNEX version line", UnexpectedEOF)
	}
	version, ok := DecodeVersion(lines[0])
	if !ok {
		return nil, newError(UNEX, fileName, 1, "parseUNEX", "no UNEX version found")
	}
	if version < Unex2Version {
		return parseUNEX1(lines, fileName)
	}
	return parseUNEX2(lines, fileName)
}

func parseUNEX1(lines []string, fileName string) (*chemjson.Node, error) {
	T := newUnexTree()
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.Contains(line, unex1Marker) {
			continue
		}
		name := strings.TrimSpace(line[:strings.Index(line, ">")])
		var C *chemjson.AtomicCoordinates
		//3 header lines after the marker.
		C, i = unexRows(lines, i+4)
		if err := T.add(name, C); err != nil {
			return nil, err
		}
	}
	return T.root(fileName)
}

type unex2Layout int

const (
	unex2None unex2Layout = iota
	unex2Native
	unex2Mol
)

func parseUNEX2(lines []string, fileName string) (*chemjson.Node, error) {
	T := newUnexTree()
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], unex2Marker) {
			continue
		}
		markerLine := i + 1
		name := "unknown"
		if fields := strings.Fields(lines[i]); len(fields) > 6 {
			name = fields[6]
		}

		//The header declares the table layout. A native table
		//header is closed by the second "--", a MOL one by the first.
		layout := unex2None
		delims := 0
	header:
		for i++; i < len(lines); i++ {
			h := lines[i]
			switch {
			case strings.Contains(h, "Format:"):
				fields := strings.Fields(h)
				if len(fields) < 2 {
					continue
				}
				switch fields[1] {
				case "UNEX":
					layout = unex2Native
				case "MOL":
					layout = unex2Mol
				default:
					return nil, newError(UNEX, fileName, i+1, "parseUNEX2", "invalid or unknown coordinate format %q", fields[1])
				}
			case strings.Contains(h, "--"):
				if layout != unex2Native {
					break header
				}
				delims++
				if delims == 2 {
					break header
				}
			}
		}
		var C *chemjson.AtomicCoordinates
		switch layout {
		case unex2None:
			return nil, newError(UNEX, fileName, markerLine, "parseUNEX2", "coordinate block without a Format declaration")
		case unex2Native:
			C, i = unexRows(lines, i+1)
		case unex2Mol:
			var err error
			//2 more lines after the header.
			C, i, err = unexMolRows(lines, i+3, fileName)
			if err != nil {
				return nil, err
			}
		}
		if err := T.add(name, C); err != nil {
			return nil, err
		}
	}
	return T.root(fileName)
}

//unexMolRows is like unexRows for the MOL layout, "symbol x y z", but
//rows that can't be read are errors. "X" is a dummy atom.
func unexMolRows(lines []string, from int, fileName string) (*chemjson.AtomicCoordinates, int, error) {
	C := chemjson.NewAtomicCoordinates(8)
	i := from
	for ; i < len(lines); i++ {
		if strings.Contains(lines[i], "--") {
			break
		}
		fields := strings.Fields(lines[i])
		if len(fields) < 4 {
			continue
		}
		num := chemjson.DummyAtom
		if fields[0] != "X" {
			var err error
			num, err = ptable.SymbolToAtomicNumber(fields[0])
			if err != nil {
				return nil, i, newError(UNEX, fileName, i+1, "unexMolRows", "%s symbol %q", InvalidAtom, fields[0])
			}
		}
		v, err := parseVec(fields[1:4])
		if err != nil {
			return nil, i, newError(UNEX, fileName, i+1, "unexMolRows", "%s: %s", InvalidValue, err)
		}
		C.Append(num, v[0], v[1], v[2])
	}
	return C, i, nil
}
