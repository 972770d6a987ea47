/*
 * logging.go, part of chemimport.
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


//Package logging configures the logrus loggers of chemimport.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rmera/chemimport/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

//New returns a logger writing to out, and also to the rotating file in
//cfg.File, if any. An invalid level means info.
func New(cfg config.Log, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	if err := configure(logger, cfg, out); err != nil {
		return nil, err
	}
	return logger, nil
}

//Init configures the standard logrus logger, which is the one used
//by default across chemimport, to write to stderr.
func Init(cfg config.Log) error {
	return configure(logrus.StandardLogger(), cfg, os.Stderr)
}

func configure(logger *logrus.Logger, cfg config.Log, out io.Writer) error {
	writer, err := getWriter(cfg, out)
	if err != nil {
		return err
	}
	logger.SetOutput(writer)
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.DateTime,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:   cfg.File != "",
			FullTimestamp:   true,
			TimestampFormat: time.DateTime,
		})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return nil
}

//getWriter tees out and the log file, if one is configured.
func getWriter(cfg config.Log, out io.Writer) (io.Writer, error) {
	if cfg.File == "" {
		return out, nil
	}
	dir := filepath.Dir(cfg.File)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "unable to create log directory %s", dir)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, //megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, //days
		LocalTime:  true,
	}
	return io.MultiWriter(out, file), nil
}
