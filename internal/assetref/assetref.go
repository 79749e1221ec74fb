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

// Package assetref implements the asset-reference detector of
// spec.md §4.2: given an asset type and a (resolved) library id,
// produce a pure shape-level predicate that's true iff the shape
// references that asset.
package assetref

import (
	v1 "github.com/component-sync/engine/api/v1"
)

// HasAssetReference returns a predicate over shapes that's true iff the
// shape references an asset of assetType from libraryID (spec.md §4.2).
// libraryID should already be resolved (empty string for "local") -
// internal/containers.GetComponent / Snapshot.ResolveLibraryID do that
// normalization; this package only compares already-resolved ids, which
// is why snap is needed here too: a shape's own *-ref-file fields are
// raw and must be resolved the same way before comparing.
func HasAssetReference(snap *v1.Snapshot, assetType v1.AssetType, libraryID string) func(*v1.Shape) bool {
	switch assetType {
	case v1.AssetComponents:
		return func(s *v1.Shape) bool {
			return s.ComponentID != "" && snap.ResolveLibraryID(s.ComponentFile) == libraryID
		}
	case v1.AssetColors:
		return func(s *v1.Shape) bool {
			if s.Type == v1.ShapeText {
				return v1.SomeNode(func(n *v1.ContentNode) bool {
					return (n.FillColorRefID != "" && snap.ResolveLibraryID(n.FillColorRefFile) == libraryID) ||
						(n.StrokeColorRefID != "" && snap.ResolveLibraryID(n.StrokeColorRefFile) == libraryID)
				}, s.Content)
			}
			if s.FillColorRefID != "" && snap.ResolveLibraryID(s.FillColorRefFile) == libraryID {
				return true
			}
			if s.StrokeColorRefID != "" && snap.ResolveLibraryID(s.StrokeColorRefFile) == libraryID {
				return true
			}
			return false
		}
	case v1.AssetTypographies:
		return func(s *v1.Shape) bool {
			if s.Type != v1.ShapeText {
				return false
			}
			return v1.SomeNode(func(n *v1.ContentNode) bool {
				return n.TypographyRefID != "" && snap.ResolveLibraryID(n.TypographyRefFile) == libraryID
			}, s.Content)
		}
	default:
		return func(*v1.Shape) bool { return false }
	}
}
