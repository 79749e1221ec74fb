/*

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

package main

import (
	"fmt"
	"net/http"

	"contrib.go.opencensus.io/exporter/prometheus"
	"github.com/spf13/cobra"

	"github.com/component-sync/engine/internal/stats"
)

var metricsAddr string

// newServeMetricsCmd hooks opencensus up to Prometheus and serves the
// scrape endpoint. Unlike the other subcommands it never touches a
// snapshot; it's meant to run alongside a host process that calls the
// driver entry points in-process and wants their stats.RecordX calls
// exported.
func newServeMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Expose the engine's opencensus counters on a Prometheus scrape endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := stats.RegisterViews(); err != nil {
				return fmt.Errorf("registering views: %w", err)
			}

			exporter, err := prometheus.NewExporter(prometheus.Options{
				Namespace: "component_sync",
			})
			if err != nil {
				return fmt.Errorf("creating prometheus exporter: %w", err)
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", exporter)

			log.Info("serving metrics", "addr", metricsAddr)
			return http.ListenAndServe(metricsAddr, mux)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "addr", ":9090", "Address to serve /metrics on")
	return cmd
}
