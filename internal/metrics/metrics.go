/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics holds the Prometheus collectors of the transport adapters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/convention/code"
)

// Transport label values.
const (
	TransportGRPC = "grpc"
	TransportHTTP = "http"
)

var (
	// ErrorsTotal counts errors rendered by an adapter.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "convention",
			Name:      "errors_total",
			Help:      "Total number of errors rendered by transport adapters",
		},
		[]string{"transport", "code", "band"},
	)

	// UnmappedErrnoTotal counts errno values that took the -p fallback.
	UnmappedErrnoTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "convention",
			Name:      "unmapped_errno_total",
			Help:      "Total number of platform errno values without a project code",
		},
		[]string{"transport"},
	)
)

// ObserveError records one rendered error.
func ObserveError(transport string, c code.Code) {
	ErrorsTotal.WithLabelValues(transport, c.String(), c.Band().String()).Inc()
	if !c.Known() {
		UnmappedErrnoTotal.WithLabelValues(transport).Inc()
	}
}
