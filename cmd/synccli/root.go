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

// Command synccli is a host-side wrapper around the sync engine: it
// loads a workspace snapshot from disk, invokes one driver entry point,
// and prints the resulting change pair as JSON. There is no engine-owned
// CLI (spec.md §6 "no CLI, wire protocol, or persisted state format
// owned by the core"); synccli is purely a convenience the host could
// have built itself.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var (
	snapshotPath string
	debugLogs    bool
	log          logr.Logger
)

var rootCmd = &cobra.Command{
	Use:   "synccli",
	Short: "Drives the component-sync engine against a workspace snapshot",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zapcore.InfoLevel
		if debugLogs {
			level = zapcore.DebugLevel
		}
		log = zap.New(zap.Level(level)).WithName("synccli")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "Path to a JSON workspace snapshot (required by every subcommand but serve-metrics)")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug-logs", false, "Shows verbose per-shape trace logs")

	rootCmd.AddCommand(newSyncFileCmd())
	rootCmd.AddCommand(newSyncLibraryCmd())
	rootCmd.AddCommand(newSyncInstanceCmd())
	rootCmd.AddCommand(newSyncInverseCmd())
	rootCmd.AddCommand(newServeMetricsCmd())
}

func requireSnapshotFlag() error {
	if snapshotPath == "" {
		return fmt.Errorf("--snapshot is required")
	}
	return nil
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
