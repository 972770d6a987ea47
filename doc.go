/*
 * doc.go, part of chemimport.
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

/*Package chemimport reads files produced by computational chemistry programs
and turns them into a single kind of tree (see the chemjson package), so the
rest of a program never needs to know which program wrote the file.


	**Supported formats**

    XYZ, including several concatenated XYZ blocks (trajectories).

    Gaussian Cube volumetric data, with the molecule it belongs to.

    UNEX 1.x and 2.x output, with any number of molecules and geometries.

    Cfour logs (every printed geometry).

    MDL Mol V2000 (atoms only, bonds are not read).

    Any of the above compressed with gzip (.gz) or zstd (.zst).


A Dispatcher tries the formats in order. For each, it first checks the beginning
of the file, and, if that looks right, parses the whole file. The first format
that parses the file wins. If none does, a *LoadError tells what each attempted
format objected to.

	root, err := chemimport.Load("water.xyz")

The formats package can be used directly when the format is known.
*/
package chemimport
