/*
 * config_test.go, part of chemimport.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[log]
level = "debug"
format = "json"

[server]
addr = "127.0.0.1:9999"

[import]
workers = 3
output = "zst"
`

func TestDefaults(Te *testing.T) {
	Te.Setenv(EnvConfigFile, "")
	cfg, err := LoadFiles("", "")
	require.NoError(Te, err)
	assert.Equal(Te, Default(), cfg)
	assert.Equal(Te, OutputJSON, cfg.Import.Output)
	assert.GreaterOrEqual(Te, cfg.Import.Workers, 1)
}

func TestTOMLAndEnv(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "chemimport.toml")
	require.NoError(Te, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := LoadFiles(path, "")
	require.NoError(Te, err)
	assert.Equal(Te, "debug", cfg.Log.Level)
	assert.Equal(Te, "json", cfg.Log.Format)
	assert.Equal(Te, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(Te, int64(64<<20), cfg.Server.MaxUpload) //not in the file
	assert.Equal(Te, 3, cfg.Import.Workers)
	assert.Equal(Te, OutputZstd, cfg.Import.Output)

	Te.Setenv(EnvWorkers, "7")
	Te.Setenv(EnvLogLevel, "warn")
	cfg, err = LoadFiles(path, "")
	require.NoError(Te, err)
	assert.Equal(Te, 7, cfg.Import.Workers)
	assert.Equal(Te, "warn", cfg.Log.Level)

	Te.Setenv(EnvWorkers, "many")
	_, err = LoadFiles(path, "")
	assert.Error(Te, err)
}

func TestDotEnv(Te *testing.T) {
	dir := Te.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(Te, os.WriteFile(dotenv, []byte("CHEMIMPORT_ADDR=:7070\nCHEMIMPORT_MAX_UPLOAD=1024\n"), 0o644))
	//registered so they are cleaned up after the test
	Te.Setenv(EnvAddr, "")
	Te.Setenv(EnvMaxUpload, "")
	os.Unsetenv(EnvAddr)
	os.Unsetenv(EnvMaxUpload)

	cfg, err := LoadFiles("", dotenv)
	require.NoError(Te, err)
	assert.Equal(Te, ":7070", cfg.Server.Addr)
	assert.Equal(Te, int64(1024), cfg.Server.MaxUpload)

	//a missing .env is fine
	_, err = LoadFiles("", filepath.Join(dir, "nothere.env"))
	assert.NoError(Te, err)
}

func TestInvalid(Te *testing.T) {
	dir := Te.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(Te, os.WriteFile(bad, []byte("[log\nlevel="), 0o644))
	_, err := LoadFiles(bad, "")
	assert.Error(Te, err)
	_, err = LoadFiles(filepath.Join(dir, "nothere.toml"), "")
	assert.Error(Te, err)

	for _, c := range []*Config{
		{Log: Log{Format: "xml"}, Import: Import{Workers: 1, Output: "json"}, Server: Server{MaxUpload: 1}},
		{Log: Log{Format: "text"}, Import: Import{Workers: 0, Output: "json"}, Server: Server{MaxUpload: 1}},
		{Log: Log{Format: "text"}, Import: Import{Workers: 1, Output: "yaml"}, Server: Server{MaxUpload: 1}},
		{Log: Log{Format: "text"}, Import: Import{Workers: 1, Output: "json"}, Server: Server{MaxUpload: 0}},
	} {
		assert.Error(Te, c.Validate())
	}
}
