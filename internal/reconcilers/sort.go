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

package reconcilers

import (
	"sort"

	v1 "github.com/component-sync/engine/api/v1"
)

// sortedShapeIDs returns a container's object ids in a stable order so
// that walking a map of shapes produces deterministic change records
// (spec.md §5: "two simultaneous invocations with the same snapshot
// produce identical results" - Go map iteration order is randomized, so
// every driver that ranges over a container's objects does so through
// this helper instead of ranging the map directly).
func sortedShapeIDs(objects map[string]*v1.Shape) []string {
	ids := make([]string, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedPageIDs(pages v1.PageIndex) []string {
	ids := make([]string, 0, len(pages))
	for id := range pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedComponentIDs(components map[string]*v1.Component) []string {
	ids := make([]string, 0, len(components))
	for id := range components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
