// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler returns an http.Handler exposing the metrics gathered by
// [gatherer]. Requests to the handler are themselves recorded in
// [registerer].
func NewHandler(gatherer prometheus.Gatherer, registerer prometheus.Registerer) http.Handler {
	return promhttp.InstrumentMetricHandler(
		registerer,
		promhttp.HandlerFor(
			gatherer,
			promhttp.HandlerOpts{},
		),
	)
}
