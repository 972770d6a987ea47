/*
 * handlers.go, part of chemimport.
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/rmera/chemimport"
	"github.com/rmera/chemimport/chemjson"
	"github.com/rmera/chemimport/formats"
	"github.com/rmera/chemimport/internal/config"
	"github.com/rmera/chemimport/internal/textio"
)

// FormatHeader carries the name of the format that imported a file,
// when the tree is sent packed.
const FormatHeader = "X-Chemimport-Format"

type loadResponse struct {
	Format string         `json:"format"`
	Tree   *chemjson.Node `json:"tree"`
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formats": s.dispatcher.Names()})
}

// handleLoad imports the request body. The query parameters are name,
// the file name, which is required, format, to only try one format, and
// encoding, json (the default) or zst.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := sanitizeFilename(q.Get("name"))
	if name == "" {
		jsonError(w, "name query parameter is required", http.StatusBadRequest)
		return
	}
	encoding := q.Get("encoding")
	if encoding == "" {
		encoding = config.OutputJSON
	}
	if encoding != config.OutputJSON && encoding != config.OutputZstd {
		jsonError(w, fmt.Sprintf("unknown encoding %q", encoding), http.StatusBadRequest)
		return
	}
	d := s.dispatcher
	if f := q.Get("format"); f != "" {
		k, err := formats.ParseKind(f)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		d = chemimport.NewDispatcher(k)
		d.SetLogger(s.log)
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUpload)
	body, err := textio.NewReader(name, r.Body)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer body.Close()
	//the limit also holds for the decompressed content
	data, err := io.ReadAll(io.LimitReader(body, s.cfg.MaxUpload+1))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUpload), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if int64(len(data)) > s.cfg.MaxUpload {
		jsonError(w, fmt.Sprintf("decompressed file exceeds max size (%d bytes)", s.cfg.MaxUpload), http.StatusRequestEntityTooLarge)
		return
	}
	UploadBytes.Observe(float64(len(data)))

	start := time.Now()
	res, err := d.LoadContent(textio.BaseName(name), data)
	if err != nil {
		LoadsTotal.WithLabelValues(noFormat, "failed").Inc()
		LoadDuration.WithLabelValues(noFormat).Observe(time.Since(start).Seconds())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write(chemjson.NewError(name, "LoadContent", err).Marshal())
		return
	}
	format := res.Format.String()
	LoadsTotal.WithLabelValues(format, "ok").Inc()
	LoadDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())

	if encoding == config.OutputZstd {
		w.Header().Set("Content-Type", "application/zstd")
		w.Header().Set(FormatHeader, format)
		if err := chemjson.Pack(w, res.Root); err != nil {
			s.log.WithError(err).Error("failed to send packed tree")
		}
		return
	}
	writeJSON(w, http.StatusOK, loadResponse{Format: format, Tree: res.Root})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	// Strip path components, keep only the base name.
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
