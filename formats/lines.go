/*
 * lines.go, part of chemimport.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/ptable"
)

//Bohr to Angstrom (CODATA 2018)
const bohr2Angstrom = 0.529177210903

//splitLines splits content in lines, without line terminators.
//"\r\n" is accepted, and a final terminator does not give an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

//headLines reads at most n lines from r. Running out of input is not an error.
func headLines(r io.Reader, n int) ([]string, error) {
	buf := bufio.NewReader(r)
	lines := make([]string, 0, n)
	for len(lines) < n {
		line, err := buf.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "unable to read file header")
		}
	}
	return lines, nil
}

//parseFloat is strconv.ParseFloat, but NaN and Inf are not accepted.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return f, nil
}

//parseVec parses the first three tokens in fields into a vector.
func parseVec(fields []string) ([3]float64, error) {
	var ret [3]float64
	if len(fields) < 3 {
		return ret, fmt.Errorf("3 values needed, %d given", len(fields))
	}
	var err error
	for i := range ret {
		ret[i], err = parseFloat(fields[i])
		if err != nil {
			return ret, err
		}
	}
	return ret, nil
}

//atomicNumber takes either an integer, which is returned as is, or an element symbol.
func atomicNumber(token string) (int, error) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, nil
	}
	return ptable.SymbolToAtomicNumber(token)
}

//coordsNode serializes C into an atomic coordinates node.
func coordsNode(name string, C *chemjson.AtomicCoordinates) (chemjson.Node, error) {
	return chemjson.NewNode(name, chemjson.KindAtomicCoordinates, C)
}

//moleculeRoot builds the top molecule node shared by the XYZ, Cfour and
//MDL parsers. last gives the atoms of the Molecule payload, and can be nil.
func moleculeRoot(fileName string, charge int, last *chemjson.AtomicCoordinates, children []chemjson.Node) (*chemjson.Node, error) {
	mol := chemjson.NewMolecule(fileName, charge, last)
	root, err := chemjson.NewNode(fileName, chemjson.KindMolecule, mol, children...)
	if err != nil {
		return nil, err
	}
	return &root, nil
}
