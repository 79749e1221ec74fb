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

// Package stats records opencensus metrics for the sync engine's own
// activity: how many driver calls ran, how many change records they
// produced, and how often a touched group suppressed a sync. There's no
// concurrent-reconciliation peak to track here (the engine has no
// workqueue of its own - see SPEC_FULL.md §6), so these are plain
// counters, recorded by the engine's own drivers and attribute updater.
package stats

import (
	"context"

	ocstats "go.opencensus.io/stats"
	ocview "go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	syncInvocationsTotal = ocstats.Int64("sync_invocations_total", "The number of sync driver entry points invoked", "invocations")
	changesEmittedTotal  = ocstats.Int64("changes_emitted_total", "The number of redo change records produced", "changes")
	touchedSkipsTotal    = ocstats.Int64("touched_skips_total", "The number of attribute sets skipped because their group was touched", "skips")
	shapesVisitedTotal   = ocstats.Int64("shapes_visited_total", "The number of shapes visited during a sync walk", "shapes")
)

// KeyDriver tags a measurement with the driver entry point that
// produced it (e.g. "generate-sync-file", "sync-shape-inverse").
var KeyDriver, _ = tag.NewKey("driver")

// KeyAssetType tags a measurement with the asset type a forward-sync
// call targeted.
var KeyAssetType, _ = tag.NewKey("asset_type")

var (
	syncInvocationsView = &ocview.View{
		Name:        "component_sync/invocations_total",
		Measure:     syncInvocationsTotal,
		Description: "The number of sync driver entry points invoked",
		Aggregation: ocview.Count(),
		TagKeys:     []tag.Key{KeyDriver},
	}
	changesEmittedView = &ocview.View{
		Name:        "component_sync/changes_emitted_total",
		Measure:     changesEmittedTotal,
		Description: "The number of redo change records produced",
		Aggregation: ocview.Sum(),
		TagKeys:     []tag.Key{KeyDriver},
	}
	touchedSkipsView = &ocview.View{
		Name:        "component_sync/touched_skips_total",
		Measure:     touchedSkipsTotal,
		Description: "The number of attribute sets skipped because their group was touched",
		Aggregation: ocview.Sum(),
	}
	shapesVisitedView = &ocview.View{
		Name:        "component_sync/shapes_visited_total",
		Measure:     shapesVisitedTotal,
		Description: "The number of shapes visited during a sync walk",
		Aggregation: ocview.Sum(),
		TagKeys:     []tag.Key{KeyDriver},
	}
)

// RegisterViews registers every view with opencensus. It is imperative
// that this runs before any Record* call, otherwise recorded
// measurements are dropped and never exported.
func RegisterViews() error {
	return ocview.Register(syncInvocationsView, changesEmittedView, touchedSkipsView, shapesVisitedView)
}

// RecordInvocation records one call to a driver entry point.
func RecordInvocation(driver string) {
	ctx, _ := tag.New(context.Background(), tag.Insert(KeyDriver, driver))
	ocstats.Record(ctx, syncInvocationsTotal.M(1))
}

// RecordChanges records the size of a driver's redo list.
func RecordChanges(driver string, n int) {
	if n == 0 {
		return
	}
	ctx, _ := tag.New(context.Background(), tag.Insert(KeyDriver, driver))
	ocstats.Record(ctx, changesEmittedTotal.M(int64(n)))
}

// RecordTouchedSkip records one attribute set suppressed by the
// touched-group policy (spec.md §4.5 omit-touched?).
func RecordTouchedSkip() {
	ocstats.Record(context.Background(), touchedSkipsTotal.M(1))
}

// RecordShapesVisited records how many shapes a driver call walked.
func RecordShapesVisited(driver string, n int) {
	if n == 0 {
		return
	}
	ctx, _ := tag.New(context.Background(), tag.Insert(KeyDriver, driver))
	ocstats.Record(ctx, shapesVisitedTotal.M(int64(n)))
}
