/*
 * metrics.go, part of chemimport.
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label used when no format imported the file.
const noFormat = "none"

var (
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chemimport_loads_total",
			Help: "Total number of import requests",
		},
		[]string{"format", "status"},
	)

	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chemimport_load_duration_seconds",
			Help:    "Time taken to recognize and parse an uploaded file",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"format"},
	)

	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chemimport_upload_bytes",
			Help:    "Size of the uploaded files, after decompression",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		},
	)
)
