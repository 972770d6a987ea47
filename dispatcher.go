/*
 * dispatcher.go, part of chemimport.
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
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/formats"
	"github.com/rmera/chemimport/internal/textio"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Result is a successfully imported file.
type Result struct {
	Format Format //the format that parsed the file
	Root   *chemjson.Node
}

// Dispatcher tries a list of formats, in order, on a file.
// A Dispatcher holds no state between calls, so Load and LoadContent
// can be called concurrently, as long as SetLogger is not.
type Dispatcher struct {
	formats []Format
	log     logrus.FieldLogger
}

// NewDispatcher returns a dispatcher for the given formats, which are tried
// in the order given. With no formats, all of formats.All are used.
func NewDispatcher(fmts ...Format) *Dispatcher {
	if len(fmts) == 0 {
		fmts = lo.Map(formats.All, func(k formats.Kind, _ int) Format { return k })
	}
	return &Dispatcher{formats: fmts, log: logrus.StandardLogger()}
}

// SetLogger sets the logger used to report each attempt, at debug level.
func (D *Dispatcher) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	D.log = l
}

// Formats returns the formats of the dispatcher, in the order they are tried.
func (D *Dispatcher) Formats() []Format {
	ret := make([]Format, len(D.formats))
	copy(ret, D.formats)
	return ret
}

// Names returns the names of the dispatcher's formats.
func (D *Dispatcher) Names() []string {
	return lo.Map(D.formats, func(f Format, _ int) string { return f.String() })
}

// Load reads the file at path, which may be compressed, and imports it.
// The file is read only once. I/O errors are returned as they are, failure
// to import the content is a *LoadError.
func (D *Dispatcher) Load(path string) (*Result, error) {
	content, err := textio.ReadAll(path)
	if err != nil {
		return nil, err
	}
	r, err := D.LoadContent(textio.BaseName(path), content)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.Decorate("Load")
		}
		return nil, err
	}
	return r, nil
}

// LoadContent imports content, a whole file. name is the name of the root node.
// The first format that recognizes and parses content gives the result; the
// errors of the formats tried before it are discarded.
func (D *Dispatcher) LoadContent(name string, content []byte) (*Result, error) {
	lerr := &LoadError{filename: name, formats: D.Names()}
	text := string(content)
	for _, f := range D.formats {
		l := D.log.WithFields(logrus.Fields{"file": name, "format": f.String()})
		ok, err := f.Sniff(bytes.NewReader(content))
		if err != nil {
			l.WithError(err).Debug("recognizer failed")
			lerr.attempts = append(lerr.attempts, Attempt{Format: f.String(), Err: err})
			continue
		}
		if !ok {
			l.Debug("not recognized")
			continue
		}
		start := time.Now()
		root, err := f.Parse(text, name)
		if err != nil {
			l.WithError(err).Debug("parser failed")
			lerr.attempts = append(lerr.attempts, Attempt{Format: f.String(), Err: err})
			continue
		}
		l.WithField("elapsed", time.Since(start)).Debug("imported")
		return &Result{Format: f, Root: root}, nil
	}
	lerr.Decorate("LoadContent")
	return nil, lerr
}

// DefaultDispatcher tries every supported format.
var DefaultDispatcher = NewDispatcher()

// Load imports the file at path with the DefaultDispatcher, and returns the tree.
func Load(path string) (*chemjson.Node, error) {
	r, err := DefaultDispatcher.Load(path)
	if err != nil {
		return nil, err
	}
	return r.Root, nil
}

// Attempt is a format that recognized a file but failed to import it.
type Attempt struct {
	Format string
	Err    error
}

func (A Attempt) String() string {
	return fmt.Sprintf("%s: %s", A.Format, A.Err)
}

// LoadError is returned when no format could import a file.
type LoadError struct {
	filename string
	formats  []string //all the formats of the dispatcher
	attempts []Attempt
	deco     []string
}

func (E *LoadError) Error() string {
	if len(E.attempts) == 0 {
		return fmt.Sprintf("no suitable parser found for file '%s': not recognized as any of %s", E.filename, strings.Join(E.formats, ", "))
	}
	return fmt.Sprintf("no suitable parser found for file '%s'. Errors: %s", E.filename, strings.Join(E.Attempts(), "; "))
}

// Attempts returns one "format: error" string per attempted format.
func (E *LoadError) Attempts() []string {
	return lo.Map(E.attempts, func(a Attempt, _ int) string { return a.String() })
}

// Tried returns the attempted formats and their errors.
func (E *LoadError) Tried() []Attempt {
	ret := make([]Attempt, len(E.attempts))
	copy(ret, E.attempts)
	return ret
}

// FileName returns the name of the file that could not be imported.
func (E *LoadError) FileName() string { return E.filename }

// Attempted returns true if at least one format was tried on the file,
// that is, if any format recognized it or failed to check it.
func (E *LoadError) Attempted() bool { return len(E.attempts) > 0 }

// Decorate adds new information to the error
func (E *LoadError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
