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

// Package reconcilers implements the forward and inverse sync drivers
// (spec.md §4.3-§4.7): the top-level entry points that walk a workspace
// snapshot and produce change pairs. Nothing here mutates its inputs -
// every function reads the snapshot it's given and returns data.
package reconcilers

import (
	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	v1 "github.com/component-sync/engine/api/v1"
	"github.com/component-sync/engine/internal/assetref"
	"github.com/component-sync/engine/internal/change"
	"github.com/component-sync/engine/internal/config"
	"github.com/component-sync/engine/internal/containers"
	"github.com/component-sync/engine/internal/stats"
)

func assetMapEmpty(lib *v1.LibraryData, assetType v1.AssetType) bool {
	if lib == nil {
		return true
	}
	switch assetType {
	case v1.AssetColors:
		return len(lib.Colors) == 0
	case v1.AssetTypographies:
		return len(lib.Typographies) == 0
	case v1.AssetComponents:
		return len(lib.Components) == 0
	default:
		return true
	}
}

// GenerateSyncFile walks every page of the workspace file, propagating
// library-id's assetType assets into whatever shapes reference them
// (spec.md §4.3 "generate-sync-file").
func GenerateSyncFile(snap *v1.Snapshot, assetType v1.AssetType, libraryID string, log logr.Logger) v1.ChangePair {
	stats.RecordInvocation("generate-sync-file")
	lib := snap.LibraryFor(libraryID)
	if assetMapEmpty(lib, assetType) {
		return v1.EmptyPair
	}
	var pairs []v1.ChangePair
	for _, pageID := range sortedPageIDs(snap.WorkspaceData.Pages) {
		page := snap.WorkspaceData.Pages[pageID]
		pairs = append(pairs, SyncContainer(snap, assetType, libraryID, page, page.ID, "", log))
	}
	result := v1.Concat(pairs...)
	stats.RecordChanges("generate-sync-file", len(result.Redo))
	return result
}

// GenerateSyncLibrary walks every component of the local file's own
// component library, propagating library-id's assetType assets into
// whatever shapes inside those components reference them (spec.md §4.3
// "generate-sync-library").
func GenerateSyncLibrary(snap *v1.Snapshot, assetType v1.AssetType, libraryID string, log logr.Logger) v1.ChangePair {
	stats.RecordInvocation("generate-sync-library")
	lib := snap.LibraryFor(libraryID)
	if assetMapEmpty(lib, assetType) {
		return v1.EmptyPair
	}
	var pairs []v1.ChangePair
	for _, id := range sortedComponentIDs(snap.WorkspaceData.Components) {
		comp := snap.WorkspaceData.Components[id]
		pairs = append(pairs, SyncContainer(snap, assetType, libraryID, comp, "", comp.ID, log))
	}
	result := v1.Concat(pairs...)
	stats.RecordChanges("generate-sync-library", len(result.Redo))
	return result
}

// SyncContainer selects the shapes in container.GetObjects() that
// reference an asset of assetType from libraryID and, per shape,
// dispatches on assetType to produce its change pair (spec.md §4.4).
func SyncContainer(snap *v1.Snapshot, assetType v1.AssetType, libraryID string, container v1.Container, pageID, componentID string, log logr.Logger) v1.ChangePair {
	pred := assetref.HasAssetReference(snap, assetType, libraryID)
	ref := change.Ref{PageID: pageID, ComponentID: componentID}
	objects := container.GetObjects()

	var pairs []v1.ChangePair
	visited := 0
	for _, id := range sortedShapeIDs(objects) {
		shape := objects[id]
		visited++
		if !pred(shape) {
			continue
		}
		log.V(1).Info("sync-container: shape references asset", "container", containers.String(container), "shape", shape.Name, "assetType", assetType)

		switch assetType {
		case v1.AssetComponents:
			pairs = append(pairs, SyncShapeAndChildren(snap, pageID, componentID, shape.ID, false, log))
		case v1.AssetColors:
			if shape.Type == v1.ShapeText {
				pairs = append(pairs, syncTextColors(snap, libraryID, shape, ref))
			} else {
				pairs = append(pairs, syncShapeColors(snap, libraryID, shape, ref))
			}
		case v1.AssetTypographies:
			pairs = append(pairs, syncTextTypographies(snap, libraryID, shape, ref))
		}
	}
	stats.RecordShapesVisited("sync-container", visited)
	return v1.Concat(pairs...)
}

// refIDAndFile reads the (ref-id, ref-file) pair named by a
// config.ColorRefRow off a shape - the table only ever names
// fill-color-ref-id/stroke-color-ref-id, so this is a two-way switch,
// not a generic attribute lookup.
func refIDAndFile(s *v1.Shape, refIDAttr string) (id, file string) {
	switch refIDAttr {
	case "fill-color-ref-id":
		return s.FillColorRefID, s.FillColorRefFile
	case "stroke-color-ref-id":
		return s.StrokeColorRefID, s.StrokeColorRefFile
	default:
		return "", ""
	}
}

// colorValue reads the source field (color/gradient/opacity) off a
// library Color that a config.ColorRefRow names.
func colorValue(c *v1.Color, source string) interface{} {
	switch source {
	case "color":
		return c.Color
	case "gradient":
		return c.Gradient
	case "opacity":
		return c.Opacity
	default:
		return nil
	}
}

// syncShapeColors implements spec.md §4.4's non-text color propagation:
// the six-row ref-id/source/target table, each row emitting an
// ignore-touched set when the shape carries that ref-id and it resolves
// to libraryID.
func syncShapeColors(snap *v1.Snapshot, libraryID string, shape *v1.Shape, ref change.Ref) v1.ChangePair {
	lib := snap.LibraryFor(libraryID)
	b := change.NewModBuilder(ref, shape.ID)

	for _, row := range config.ColorRefTable {
		refID, refFile := refIDAndFile(shape, row.RefIDAttr)
		if refID == "" || snap.ResolveLibraryID(refFile) != libraryID {
			continue
		}
		color := lib.Colors[refID]
		if color == nil {
			continue
		}
		newVal := colorValue(color, row.Source)
		oldVal := config.ComponentSyncAttrs[row.Target].Get(shape)
		if cmp.Equal(newVal, oldVal) {
			continue
		}
		b.AppendSet(row.Target, newVal, oldVal, true)
	}
	return b.Build()
}

// syncTextColors implements spec.md §4.4's text-shape color
// propagation: a content-tree traversal replacing (fill-color,
// fill-opacity, fill-color-gradient) on every node whose
// fill-color-ref-id resolves to libraryID.
func syncTextColors(snap *v1.Snapshot, libraryID string, shape *v1.Shape, ref change.Ref) v1.ChangePair {
	lib := snap.LibraryFor(libraryID)
	newContent := v1.MapNode(func(n *v1.ContentNode) *v1.ContentNode {
		if n.FillColorRefID == "" || snap.ResolveLibraryID(n.FillColorRefFile) != libraryID {
			return n
		}
		color := lib.Colors[n.FillColorRefID]
		if color == nil {
			return n
		}
		out := *n
		out.FillColor = color.Color
		out.FillOpacity = color.Opacity
		out.FillColorGradient = color.Gradient
		return &out
	}, shape.Content)

	if cmp.Equal(newContent, shape.Content) {
		return v1.EmptyPair
	}
	b := change.NewModBuilder(ref, shape.ID)
	b.AppendSet("content", newContent, shape.Content, true)
	return b.Build()
}

// syncTextTypographies implements spec.md §4.4's typography
// propagation: for every content node whose typography-ref-id resolves
// to libraryID, merge every typography field except name/id.
func syncTextTypographies(snap *v1.Snapshot, libraryID string, shape *v1.Shape, ref change.Ref) v1.ChangePair {
	lib := snap.LibraryFor(libraryID)
	newContent := v1.MapNode(func(n *v1.ContentNode) *v1.ContentNode {
		if n.TypographyRefID == "" || snap.ResolveLibraryID(n.TypographyRefFile) != libraryID {
			return n
		}
		typ := lib.Typographies[n.TypographyRefID]
		if typ == nil {
			return n
		}
		out := *n
		out.TypographyAttrs = typ.TypographyAttrs
		return &out
	}, shape.Content)

	if cmp.Equal(newContent, shape.Content) {
		return v1.EmptyPair
	}
	b := change.NewModBuilder(ref, shape.ID)
	b.AppendSet("content", newContent, shape.Content, true)
	return b.Build()
}
