/*
 * config.go, part of chemimport.
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

//Package config holds the settings of the chemimport program. They are read
//from an optional TOML file, and then from environment variables, which
//can be set in a .env file.
package config

import (
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

//Environment variables. Each one overrides the corresponding TOML key.
const (
	EnvConfigFile = "CHEMIMPORT_CONFIG"
	EnvLogLevel   = "CHEMIMPORT_LOG_LEVEL"
	EnvLogFormat  = "CHEMIMPORT_LOG_FORMAT"
	EnvLogFile    = "CHEMIMPORT_LOG_FILE"
	EnvAddr       = "CHEMIMPORT_ADDR"
	EnvMaxUpload  = "CHEMIMPORT_MAX_UPLOAD"
	EnvWorkers    = "CHEMIMPORT_WORKERS"
	EnvOutput     = "CHEMIMPORT_OUTPUT"
)

//Output encodings for imported trees.
const (
	OutputJSON = "json"
	OutputZstd = "zst"
)

type Log struct {
	Level      string `toml:"level"`  //panic/fatal/error/warn/info/debug/trace
	Format     string `toml:"format"` //text or json
	File       string `toml:"file"`   //if not empty, logs also go to this file, which is rotated.
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type Server struct {
	Addr      string `toml:"addr"`
	MaxUpload int64  `toml:"max_upload"` //bytes
}

type Import struct {
	Workers int    `toml:"workers"` //concurrent files in batch mode
	Output  string `toml:"output"`  //json or zst
}

//Config is the whole configuration.
type Config struct {
	Log    Log    `toml:"log"`
	Server Server `toml:"server"`
	Import Import `toml:"import"`
}

//Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  64,
			MaxBackups: 5,
			MaxAgeDays: 14,
		},
		Server: Server{
			Addr:      ":8080",
			MaxUpload: 64 << 20,
		},
		Import: Import{
			Workers: runtime.NumCPU(),
			Output:  OutputJSON,
		},
	}
}

//Load is LoadFiles(path, ".env").
func Load(path string) (*Config, error) {
	return LoadFiles(path, ".env")
}

//LoadFiles reads the variables in dotenv, if that file exists, into the
//environment (without replacing variables already set), then the TOML file
//at path, and finally the environment variables. If path is empty,
//the CHEMIMPORT_CONFIG variable is used, and if that is also empty,
//no TOML file is read.
func LoadFiles(path, dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "unable to read %s", dotenv)
		}
	}
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.readTOML(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.readEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (C *Config) readTOML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "unable to open configuration file")
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(C); err != nil {
		return errors.Wrapf(err, "invalid configuration file %s", path)
	}
	return nil
}

func (C *Config) readEnv() error {
	str := map[string]*string{
		EnvLogLevel:  &C.Log.Level,
		EnvLogFormat: &C.Log.Format,
		EnvLogFile:   &C.Log.File,
		EnvAddr:      &C.Server.Addr,
		EnvOutput:    &C.Import.Output,
	}
	for k, p := range str {
		if v, ok := os.LookupEnv(k); ok {
			*p = strings.TrimSpace(v)
		}
	}
	if v, ok := os.LookupEnv(EnvMaxUpload); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvMaxUpload)
		}
		C.Server.MaxUpload = n
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvWorkers)
		}
		C.Import.Workers = n
	}
	return nil
}

//Validate checks that the values in C make sense.
func (C *Config) Validate() error {
	switch C.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log format must be text or json, not %q", C.Log.Format)
	}
	switch C.Import.Output {
	case OutputJSON, OutputZstd:
	default:
		return errors.Errorf("output must be %s or %s, not %q", OutputJSON, OutputZstd, C.Import.Output)
	}
	if C.Import.Workers < 1 {
		return errors.Errorf("workers must be at least 1, not %d", C.Import.Workers)
	}
	if C.Server.MaxUpload < 1 {
		return errors.Errorf("max_upload must be positive, not %d", C.Server.MaxUpload)
	}
	return nil
}
