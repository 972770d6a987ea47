/*
 * formats.go, part of chemimport.
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
	"io"
	"strings"

	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/internal/textio"
)

//Kind identifies one of the supported file formats.
type Kind int

const (
	XYZ Kind = iota
	GaussianCube
	UNEX
	Cfour
	MDLMolV2000
)

//All contains every supported format, in the order in which a file
//should be tried against them.
var All = []Kind{XYZ, GaussianCube, UNEX, Cfour, MDLMolV2000}

var kindNames = map[Kind]string{
	XYZ:          "XYZ",
	GaussianCube: "Gaussian Cube",
	UNEX:         "UNEX",
	Cfour:        "Cfour",
	MDLMolV2000:  "MDL Mol V2000",
}

//short names, for command lines and query strings.
var kindAliases = map[string]Kind{
	"xyz":   XYZ,
	"cube":  GaussianCube,
	"unex":  UNEX,
	"cfour": Cfour,
	"mdl":   MDLMolV2000,
	"mol":   MDLMolV2000,
}

//String returns the human readable name of the format.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Bound is the maximum number of lines that the recognizer for k reads.
func (k Kind) Bound() int {
	switch k {
	case XYZ:
		return xyzBound
	case GaussianCube:
		return cubeBound
	case UNEX:
		return unexBound
	case Cfour:
		return cfourBound
	case MDLMolV2000:
		return mdlBound
	}
	return 0
}

//ParseKind returns the format with the given name. Both the names given
//by String and the short aliases (xyz, cube, unex, cfour, mdl) are accepted,
//regardless of case.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	for _, k := range All {
		if strings.ToLower(k.String()) == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

//Sniff reads at most k.Bound() lines from r and returns true if they look
//like the beginning of a file of format k. Short input gives false, not an error.
//Only read errors are returned.
func (k Kind) Sniff(r io.Reader) (bool, error) {
	lines, err := headLines(r, k.Bound())
	if err != nil {
		return false, err
	}
	switch k {
	case XYZ:
		return sniffXYZ(lines), nil
	case GaussianCube:
		return sniffCube(lines), nil
	case UNEX:
		return sniffUNEX(lines), nil
	case Cfour:
		return sniffCfour(lines), nil
	case MDLMolV2000:
		return sniffMDL(lines), nil
	}
	return false, fmt.Errorf("unknown format %s", k)
}

//Test opens the file at path and sniffs it. Compressed files are
//decompressed first.
func (k Kind) Test(path string) (bool, error) {
	f, err := textio.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return k.Sniff(f)
}

//Parse parses the whole content of a file of format k. fileName
//names the root node of the returned tree. Structural problems are
//reported as *Error.
func (k Kind) Parse(content, fileName string) (*chemjson.Node, error) {
	switch k {
	case XYZ:
		return parseXYZ(content, fileName)
	case GaussianCube:
		return parseCube(content, fileName)
	case UNEX:
		return parseUNEX(content, fileName)
	case Cfour:
		return parseCfour(content, fileName)
	case MDLMolV2000:
		return parseMDL(content, fileName)
	}
	return nil, fmt.Errorf("unknown format %s", k)
}
