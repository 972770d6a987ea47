/*
 * json.go, part of chemimport.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Marshal serializes a whole tree.
func Marshal(root *Node) ([]byte, error) {
	return json.Marshal(root)
}

//Unmarshal unserializes a tree produced by Marshal.
func Unmarshal(data []byte) (*Node, error) {
	root := new(Node)
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to unserialize tree: %w", err)
	}
	return root, nil
}

//Pack writes root to out as a zstd-compressed JSON stream.
func Pack(out io.Writer, root *Node) error {
	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(root); err != nil {
		enc.Close()
		return fmt.Errorf("failed to pack tree: %w", err)
	}
	return enc.Close()
}

//Unpack reads a tree written by Pack.
func Unpack(in io.Reader) (*Node, error) {
	dec, err := zstd.NewReader(in)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	root := new(Node)
	if err := json.NewDecoder(dec).Decode(root); err != nil {
		return nil, fmt.Errorf("failed to unpack tree: %w", err)
	}
	return root, nil
}

//An easily JSON-serializable error type, used to send failures to
//programs that consume the trees.
type Error struct {
	deco     []string
	IsError  bool     //If this is false (no error) all the other fields will be at their zero-values.
	File     string   //the file being imported, if any
	Function string   //which go function gave the error
	Message  string   //the error itself
	Attempts []string //one entry per format tried, if the error comes from a failed import
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-able error.
//If err has an Attempts() []string method, its attempts are copied.
func NewError(file, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	jerr.File = file
	jerr.Function = function
	jerr.Message = err.Error()
	if a, ok := err.(interface{ Attempts() []string }); ok {
		jerr.Attempts = a.Attempts()
	}
	return jerr
}
