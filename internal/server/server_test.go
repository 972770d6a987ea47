/*
 * server_test.go, part of chemimport.
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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/rmera/chemimport"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const water = "2\nwater\nO 0.0 0.0 0.0\nH 0.0 0.0 0.96\n"

func newTestServer(Te *testing.T, maxUpload int64) (*Server, *test.Hook) {
	Te.Helper()
	logger, hook := test.NewNullLogger()
	d := chemimport.NewDispatcher()
	d.SetLogger(logger)
	return New(d, logger, config.Server{Addr: "127.0.0.1:0", MaxUpload: maxUpload}), hook
}

func do(s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndFormats(Te *testing.T) {
	s, hook := newTestServer(Te, 1<<20)
	rec := do(s, http.MethodGet, "/health", nil)
	assert.Equal(Te, http.StatusOK, rec.Code)
	assert.JSONEq(Te, `{"status":"ok"}`, rec.Body.String())

	last := hook.LastEntry()
	require.NotNil(Te, last)
	assert.Equal(Te, "request", last.Message)
	assert.Equal(Te, "/health", last.Data["path"])
	assert.NotEmpty(Te, last.Data["req_id"])

	rec = do(s, http.MethodGet, "/api/formats", nil)
	assert.Equal(Te, http.StatusOK, rec.Code)
	assert.JSONEq(Te, `{"formats":["XYZ","Gaussian Cube","UNEX","Cfour","MDL Mol V2000"]}`, rec.Body.String())
}

func TestLoad(Te *testing.T) {
	s, _ := newTestServer(Te, 1<<20)
	rec := do(s, http.MethodPost, "/api/load?name=dir/water.xyz", []byte(water))
	require.Equal(Te, http.StatusOK, rec.Code, rec.Body.String())
	var resp loadResponse
	require.NoError(Te, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(Te, "XYZ", resp.Format)
	require.NotNil(Te, resp.Tree)
	assert.Equal(Te, "water.xyz", resp.Tree.Name)
	assert.Equal(Te, chemjson.KindMolecule, resp.Tree.Kind)
}

func TestLoadCompressed(Te *testing.T) {
	s, _ := newTestServer(Te, 1<<20)
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(water))
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())

	rec := do(s, http.MethodPost, "/api/load?name=water.xyz.gz&encoding=zst", buf.Bytes())
	require.Equal(Te, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(Te, "XYZ", rec.Header().Get(FormatHeader))
	root, err := chemjson.Unpack(rec.Body)
	require.NoError(Te, err)
	assert.Equal(Te, "water.xyz", root.Name)
}

func TestLoadCompressedTooBig(Te *testing.T) {
	s, _ := newTestServer(Te, 64<<10)
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(strings.Repeat("0", 1<<20)))
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())
	require.Less(Te, buf.Len(), 64<<10)

	rec := do(s, http.MethodPost, "/api/load?name=big.xyz.gz", buf.Bytes())
	assert.Equal(Te, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
	assert.Contains(Te, rec.Body.String(), "decompressed")

	//right at the limit is fine
	buf.Reset()
	gw = gzip.NewWriter(&buf)
	_, err = gw.Write([]byte(water))
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())
	s, _ = newTestServer(Te, int64(max(len(water), buf.Len())))
	rec = do(s, http.MethodPost, "/api/load?name=water.xyz.gz", buf.Bytes())
	assert.Equal(Te, http.StatusOK, rec.Code, rec.Body.String())
}

func TestLoadFailures(Te *testing.T) {
	s, _ := newTestServer(Te, 64)

	rec := do(s, http.MethodPost, "/api/load", []byte(water))
	assert.Equal(Te, http.StatusBadRequest, rec.Code)

	rec = do(s, http.MethodPost, "/api/load?name=a.xyz&encoding=yaml", []byte(water))
	assert.Equal(Te, http.StatusBadRequest, rec.Code)

	rec = do(s, http.MethodPost, "/api/load?name=a.xyz&format=pdb", []byte(water))
	assert.Equal(Te, http.StatusBadRequest, rec.Code)

	rec = do(s, http.MethodPost, "/api/load?name=big.xyz", []byte(strings.Repeat(water, 10)))
	assert.Equal(Te, http.StatusRequestEntityTooLarge, rec.Code)

	rec = do(s, http.MethodPost, "/api/load?name=notes.txt", []byte("just\nsome notes\n"))
	assert.Equal(Te, http.StatusUnprocessableEntity, rec.Code)
	var jerr chemjson.Error
	require.NoError(Te, json.Unmarshal(rec.Body.Bytes(), &jerr))
	assert.True(Te, jerr.IsError)
	assert.Equal(Te, "notes.txt", jerr.File)
	assert.Contains(Te, jerr.Message, "no suitable parser found for file 'notes.txt'")

	//only the requested format is tried
	rec = do(s, http.MethodPost, "/api/load?name=water.xyz&format=cube", []byte(water))
	assert.Equal(Te, http.StatusUnprocessableEntity, rec.Code)
	require.NoError(Te, json.Unmarshal(rec.Body.Bytes(), &jerr))
	assert.Contains(Te, jerr.Message, "Gaussian Cube")
	assert.NotContains(Te, jerr.Message, "MDL")
}

func TestMetrics(Te *testing.T) {
	s, _ := newTestServer(Te, 1<<20)
	do(s, http.MethodPost, "/api/load?name=water.xyz", []byte(water))
	rec := do(s, http.MethodGet, "/metrics", nil)
	assert.Equal(Te, http.StatusOK, rec.Code)
	assert.Contains(Te, rec.Body.String(), `chemimport_loads_total{format="XYZ",status="ok"}`)
	assert.Contains(Te, rec.Body.String(), "chemimport_upload_bytes")
}

func TestRun(Te *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(Te, err)
	addr := l.Addr().String()
	require.NoError(Te, l.Close())

	s := New(chemimport.NewDispatcher(), logrus.New(), config.Server{Addr: addr, MaxUpload: 1 << 20})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var resp *http.Response
	require.Eventually(Te, func() bool {
		resp, err = http.Get("http://" + addr + "/health")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(Te, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(Te, err)
	case <-time.After(15 * time.Second):
		Te.Fatal("server did not shut down")
	}
}
