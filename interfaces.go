/*
 * interfaces.go, part of chemimport.
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

package chemimport

import (
	"io"

	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/formats"
)

// Format is a file format a Dispatcher can try. formats.Kind implements it.
type Format interface {
	//The name of the format, used in logs and errors.
	String() string

	//Sniff reads the beginning of r, and returns true if it looks like
	//a file of this format. It must not fail on short input.
	Sniff(r io.Reader) (bool, error)

	//Parse reads the whole content of a file. fileName is used to name
	//the root of the returned tree.
	Parse(content, fileName string) (*chemjson.Node, error)
}

var _ Format = formats.XYZ

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice after the call. An empty string just returns the current value.
}

// FileError is an error associated to a particular file, and,
// possibly, a line in it.
type FileError interface {
	Error
	FileName() string
	Line() int
}

var (
	_ FileError = (*formats.Error)(nil)
	_ Error     = (*LoadError)(nil)
)
