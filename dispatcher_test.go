/*
 * dispatcher_test.go, part of chemimport.
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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/formats"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//fakeFormat sniffs and parses as told.
type fakeFormat struct {
	name     string
	sniff    bool
	sniffErr error
	parseErr error
	parsed   *int
}

func (f fakeFormat) String() string { return f.name }

func (f fakeFormat) Sniff(r io.Reader) (bool, error) { return f.sniff, f.sniffErr }

func (f fakeFormat) Parse(content, fileName string) (*chemjson.Node, error) {
	if f.parsed != nil {
		*f.parsed++
	}
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	n, err := chemjson.NewNode(fileName, chemjson.KindMolecule, nil)
	return &n, err
}

func TestLoadFixtures(Te *testing.T) {
	files := map[string]formats.Kind{
		"water.xyz":     formats.XYZ,
		"traj.xyz":      formats.XYZ,
		"h2o.cube":      formats.GaussianCube,
		"water.unex1":   formats.UNEX,
		"water.unex2":   formats.UNEX,
		"h2o.cfour.log": formats.Cfour,
		"ethanol.mol":   formats.MDLMolV2000,
	}
	D := NewDispatcher()
	assert.Equal(Te, []string{"XYZ", "Gaussian Cube", "UNEX", "Cfour", "MDL Mol V2000"}, D.Names())
	for name, want := range files {
		r, err := D.Load(filepath.Join("formats", "testdata", name))
		require.NoError(Te, err, name)
		assert.Equal(Te, want, r.Format, name)
		assert.Equal(Te, name, r.Root.Name)
	}
}

func TestLoadWater(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "water.xyz.gz")
	f, err := os.Create(path)
	require.NoError(Te, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte("2\nwater\nO 0.0 0.0 0.0\nH 0.0 0.0 0.96\n"))
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	require.NoError(Te, f.Close())

	root, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, "water.xyz", root.Name)
	sets := root.Find(chemjson.KindAtomicCoordinates)
	require.Len(Te, sets, 1)
	assert.Equal(Te, "water", sets[0].Name)
	C, err := sets[0].Coordinates()
	require.NoError(Te, err)
	assert.Equal(Te, []int{8, 1}, C.AtomicNum)
}

func TestLoadIOError(Te *testing.T) {
	_, err := Load(filepath.Join(Te.TempDir(), "nothere.xyz"))
	require.Error(Te, err)
	var lerr *LoadError
	assert.False(Te, errors.As(err, &lerr))
	assert.True(Te, errors.Is(err, os.ErrNotExist))
}

func TestFirstSuccessWins(Te *testing.T) {
	var parsed int
	D := NewDispatcher(
		fakeFormat{name: "A", sniff: false},
		fakeFormat{name: "B", sniff: true, parseErr: errors.New("broken table")},
		fakeFormat{name: "C", sniff: true},
		fakeFormat{name: "D", sniff: true, parsed: &parsed},
	)
	r, err := D.LoadContent("f.txt", []byte("whatever"))
	require.NoError(Te, err)
	assert.Equal(Te, "C", r.Format.String())
	assert.Equal(Te, "f.txt", r.Root.Name)
	assert.Zero(Te, parsed, "formats after the first success are not tried")
}

func TestNothingRecognized(Te *testing.T) {
	D := NewDispatcher()
	_, err := D.LoadContent("notes.txt", []byte("just some notes\nabout nothing\n"))
	require.Error(Te, err)
	var lerr *LoadError
	require.True(Te, errors.As(err, &lerr))
	assert.False(Te, lerr.Attempted())
	assert.Empty(Te, lerr.Attempts())
	assert.Equal(Te, "notes.txt", lerr.FileName())
	for _, name := range D.Names() {
		assert.Contains(Te, err.Error(), name)
	}
	assert.Equal(Te, []string{"LoadContent"}, lerr.Decorate(""))
}

func TestOnlyAttemptsReported(Te *testing.T) {
	D := NewDispatcher(
		fakeFormat{name: "Quiet", sniff: false},
		fakeFormat{name: "Broken", sniff: true, parseErr: errors.New("broken table")},
		fakeFormat{name: "Unreadable", sniffErr: errors.New("disk on fire")},
	)
	_, err := D.LoadContent("f.txt", []byte("x"))
	var lerr *LoadError
	require.True(Te, errors.As(err, &lerr))
	assert.True(Te, lerr.Attempted())
	assert.Equal(Te, []string{"Broken: broken table", "Unreadable: disk on fire"}, lerr.Attempts())
	assert.Equal(Te, "no suitable parser found for file 'f.txt'. Errors: Broken: broken table; Unreadable: disk on fire", err.Error())
	assert.NotContains(Te, err.Error(), "Quiet")
	tried := lerr.Tried()
	require.Len(Te, tried, 2)
	assert.Equal(Te, "Broken", tried[0].Format)
}

func TestRealFormatFailure(Te *testing.T) {
	//recognized as XYZ, but the 9th card, past what the recognizer reads, is broken
	content := "9\nbig\n" + strings.Repeat("C 0.0 0.0 0.0\n", 8) + "H 0.0 0.0\n"
	_, err := DefaultDispatcher.LoadContent("bad.xyz", []byte(content))
	var lerr *LoadError
	require.True(Te, errors.As(err, &lerr))
	require.Len(Te, lerr.Tried(), 1)
	var ferr *formats.Error
	require.True(Te, errors.As(lerr.Tried()[0].Err, &ferr))
	assert.Equal(Te, 11, ferr.Line())
	assert.True(Te, strings.HasPrefix(lerr.Attempts()[0], "XYZ: "))
}

func TestDispatcherLogs(Te *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	D := NewDispatcher()
	D.SetLogger(logger)
	_, err := D.LoadContent("water.xyz", []byte("2\nwater\nO 0.0 0.0 0.0\nH 0.0 0.0 0.96\n"))
	require.NoError(Te, err)
	last := hook.LastEntry()
	require.NotNil(Te, last)
	assert.Equal(Te, "imported", last.Message)
	assert.Equal(Te, "XYZ", last.Data["format"])
	assert.Equal(Te, "water.xyz", last.Data["file"])
	D.SetLogger(nil)
}
