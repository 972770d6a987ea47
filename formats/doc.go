/*
 * doc.go, part of chemimport.
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

//Package formats recognizes and parses computational chemistry files.
//
//Each supported format is a Kind. Kind.Sniff looks at the first few lines
//of a file and tells whether they look like that format, and Kind.Parse reads
//a whole file into a chemjson tree:
//
//	XYZ, Cfour, MDL Mol V2000:  molecule -> atomic_coordinates...
//	Gaussian Cube:              volume_cube -> atomic_coordinates ("CubeMol")
//	UNEX:                       unex -> molecule... -> atomic_coordinates ("Set#N")
//
//All coordinates in the trees are in Angstrom.
//Parsers never panic on bad input. They return a *Error with the line
//where the problem was found.
package formats
