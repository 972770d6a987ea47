/*
 * errors.go, part of chemimport.
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

import "fmt"

//Error is the error returned by the parsers when a file does not have
//the structure its format requires.
type Error struct {
	message  string
	filename string //the file being parsed
	format   Kind
	line     int //1-based, 0 if the problem is not on a particular line
	deco     []string
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("%s file %s error at line %d: %s", err.format, err.filename, err.line, err.message)
	}
	return fmt.Sprintf("%s file %s error: %s", err.format, err.filename, err.message)
}

//Decorate adds new information to the error, and returns the
//whole decoration trail.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the name of the file that failed to parse.
func (err *Error) FileName() string { return err.filename }

//Format returns the format the file was parsed as.
func (err *Error) Format() Kind { return err.format }

//Line returns the 1-based line where the problem was found, or 0.
func (err *Error) Line() int { return err.line }

//Message returns the error message without file and line information.
func (err *Error) Message() string { return err.message }

//Messages shared by more than one parser.
const (
	UnexpectedEOF = "unexpected end of file"
	InvalidValue  = "invalid numeric value"
	InvalidAtom   = "invalid atom"
)

func newError(k Kind, filename string, line int, caller string, format string, args ...any) *Error {
	return &Error{
		message:  fmt.Sprintf(format, args...),
		filename: filename,
		format:   k,
		line:     line,
		deco:     []string{caller},
	}
}
