/*
 * textio.go, part of chemimport.
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

//Package textio opens text files that may be gzip or zstd compressed.
//The compression is chosen by the file extension.
package textio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

//Compression suffixes understood by Open.
const (
	GzipSuffix = ".gz"
	ZstdSuffix = ".zst"
)

//why couldn't *zstd.Decoder implement io.ReadCloser?
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//file closes both the decompressor and the underlying file.
type file struct {
	io.Reader
	closers []io.Closer
}

func (f *file) Close() error {
	var first error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//Open opens name for reading. Files ending in .gz or .zst are
//decompressed on the fly. The caller must close the returned reader.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", name)
	}
	r, err := NewReader(name, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &file{Reader: r, closers: []io.Closer{r, f}}, nil
}

//NewReader returns a reader that decompresses in, if name has a
//compression suffix, or reads it as it is. Closing the returned reader
//does not close in.
func NewReader(name string, in io.Reader) (io.ReadCloser, error) {
	var dec io.ReadCloser
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case GzipSuffix:
		dec, err = gzip.NewReader(bufio.NewReader(in))
	case ZstdSuffix:
		var z *zstd.Decoder
		z, err = zstd.NewReader(bufio.NewReader(in))
		if err == nil {
			dec = zstdCloser{z}
		}
	default:
		return io.NopCloser(in), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decompress %s", name)
	}
	return dec, nil
}

//ReadAll returns the whole, decompressed, content of name.
//The file is closed before returning.
func ReadAll(name string) ([]byte, error) {
	r, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", name)
	}
	return content, nil
}

//BaseName returns the last element of path, without a compression suffix.
//"dir/water.xyz.gz" gives "water.xyz".
func BaseName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	switch strings.ToLower(ext) {
	case GzipSuffix, ZstdSuffix:
		return strings.TrimSuffix(base, ext)
	}
	return base
}
