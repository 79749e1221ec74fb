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

// Package config holds the small package-level lookup tables the sync
// engine is driven by - the one real "configuration" surface this domain
// has (see SPEC_FULL.md §2.3). There is nothing here that's read from
// disk or a flag; like the teacher's internal/config, it's code.
package config

import (
	"sort"

	v1 "github.com/component-sync/engine/api/v1"
)

// Attribute groups. Overriding any attribute in a group marks the whole
// group touched (spec.md §3 invariant 4, §9 "Touched flags").
const (
	GroupGeometry   = "geometry"
	GroupVisual     = "visual"
	GroupStroke     = "stroke"
	GroupFill       = "fill"
	GroupText       = "text"
	GroupShadow     = "shadow"
	GroupImage      = "image"
)

// AttrSpec describes one syncable shape attribute: which touched group
// it belongs to, and how to read/write it generically so the reconciler
// can iterate the whole table without a type switch per attribute.
type AttrSpec struct {
	Group string
	// Has reports whether this attribute is meaningful for the given
	// shape (e.g. stroke attributes only apply to strokeable shapes).
	Has func(s *v1.Shape) bool
	Get func(s *v1.Shape) interface{}
	Set func(s *v1.Shape, val interface{})
}

func hasStroke(s *v1.Shape) bool {
	return s.StrokeColorRefID != "" || s.StrokeColor != "" || s.StrokeWidth != 0
}

func hasFill(s *v1.Shape) bool {
	return s.FillColorRefID != "" || s.FillColor != ""
}

func hasContent(s *v1.Shape) bool {
	return s.Type == v1.ShapeText && s.Content != nil
}

func always(*v1.Shape) bool { return true }

func floatGet(f func(*v1.Shape) float64) func(*v1.Shape) interface{} {
	return func(s *v1.Shape) interface{} { return f(s) }
}
func floatSet(f func(s *v1.Shape, v float64)) func(*v1.Shape, interface{}) {
	return func(s *v1.Shape, val interface{}) { f(s, val.(float64)) }
}
func strGet(f func(*v1.Shape) string) func(*v1.Shape) interface{} {
	return func(s *v1.Shape) interface{} { return f(s) }
}
func strSet(f func(s *v1.Shape, v string)) func(*v1.Shape, interface{}) {
	return func(s *v1.Shape, val interface{}) { f(s, val.(string)) }
}

// ComponentSyncAttrs is the process-wide constant spec.md §4.5/§9 calls
// "component-sync-attrs": every syncable attribute except x/y (handled
// separately via §4.7 - see internal/geometry), mapped to its group tag
// and a generic accessor pair.
var ComponentSyncAttrs = map[string]AttrSpec{
	"width": {
		Group: GroupGeometry, Has: always,
		Get: floatGet(func(s *v1.Shape) float64 { return s.Width }),
		Set: floatSet(func(s *v1.Shape, v float64) { s.Width = v }),
	},
	"height": {
		Group: GroupGeometry, Has: always,
		Get: floatGet(func(s *v1.Shape) float64 { return s.Height }),
		Set: floatSet(func(s *v1.Shape, v float64) { s.Height = v }),
	},
	"rotation": {
		Group: GroupGeometry, Has: always,
		Get: floatGet(func(s *v1.Shape) float64 { return s.Rotation }),
		Set: floatSet(func(s *v1.Shape, v float64) { s.Rotation = v }),
	},
	"opacity": {
		Group: GroupVisual, Has: always,
		Get: floatGet(func(s *v1.Shape) float64 { return s.Opacity }),
		Set: floatSet(func(s *v1.Shape, v float64) { s.Opacity = v }),
	},

	"fill-color": {
		Group: GroupFill, Has: hasFill,
		Get: strGet(func(s *v1.Shape) string { return s.FillColor }),
		Set: strSet(func(s *v1.Shape, v string) { s.FillColor = v }),
	},
	"fill-color-gradient": {
		Group: GroupFill, Has: hasFill,
		Get: func(s *v1.Shape) interface{} { return s.FillColorGradient },
		Set: func(s *v1.Shape, v interface{}) { s.FillColorGradient, _ = v.(*v1.Gradient) },
	},
	"fill-opacity": {
		Group: GroupFill, Has: hasFill,
		Get: floatGet(func(s *v1.Shape) float64 { return s.FillOpacity }),
		Set: floatSet(func(s *v1.Shape, v float64) { s.FillOpacity = v }),
	},
	"fill-color-ref-id": {
		Group: GroupFill, Has: hasFill,
		Get: strGet(func(s *v1.Shape) string { return s.FillColorRefID }),
		Set: strSet(func(s *v1.Shape, v string) { s.FillColorRefID = v }),
	},
	"fill-color-ref-file": {
		Group: GroupFill, Has: hasFill,
		Get: strGet(func(s *v1.Shape) string { return s.FillColorRefFile }),
		Set: strSet(func(s *v1.Shape, v string) { s.FillColorRefFile = v }),
	},

	"stroke-color": {
		Group: GroupStroke, Has: hasStroke,
		Get: strGet(func(s *v1.Shape) string { return s.StrokeColor }),
		Set: strSet(func(s *v1.Shape, v string) { s.StrokeColor = v }),
	},
	"stroke-color-gradient": {
		Group: GroupStroke, Has: hasStroke,
		Get: func(s *v1.Shape) interface{} { return s.StrokeColorGradient },
		Set: func(s *v1.Shape, v interface{}) { s.StrokeColorGradient, _ = v.(*v1.Gradient) },
	},
	"stroke-opacity": {
		Group: GroupStroke, Has: hasStroke,
		Get: floatGet(func(s *v1.Shape) float64 { return s.StrokeOpacity }),
		Set: floatSet(func(s *v1.Shape, v float64) { s.StrokeOpacity = v }),
	},
	"stroke-style": {
		Group: GroupStroke, Has: hasStroke,
		Get: strGet(func(s *v1.Shape) string { return s.StrokeStyle }),
		Set: strSet(func(s *v1.Shape, v string) { s.StrokeStyle = v }),
	},
	"stroke-width": {
		Group: GroupStroke, Has: hasStroke,
		Get: floatGet(func(s *v1.Shape) float64 { return s.StrokeWidth }),
		Set: floatSet(func(s *v1.Shape, v float64) { s.StrokeWidth = v }),
	},
	"stroke-alignment": {
		Group: GroupStroke, Has: hasStroke,
		Get: strGet(func(s *v1.Shape) string { return s.StrokeAlignment }),
		Set: strSet(func(s *v1.Shape, v string) { s.StrokeAlignment = v }),
	},
	"stroke-color-ref-id": {
		Group: GroupStroke, Has: hasStroke,
		Get: strGet(func(s *v1.Shape) string { return s.StrokeColorRefID }),
		Set: strSet(func(s *v1.Shape, v string) { s.StrokeColorRefID = v }),
	},
	"stroke-color-ref-file": {
		Group: GroupStroke, Has: hasStroke,
		Get: strGet(func(s *v1.Shape) string { return s.StrokeColorRefFile }),
		Set: strSet(func(s *v1.Shape, v string) { s.StrokeColorRefFile = v }),
	},

	"content": {
		Group: GroupText, Has: hasContent,
		Get: func(s *v1.Shape) interface{} { return s.Content },
		Set: func(s *v1.Shape, v interface{}) { s.Content, _ = v.(*v1.ContentNode) },
	},
	"grow-type": {
		Group: GroupText, Has: func(s *v1.Shape) bool { return s.Type == v1.ShapeText },
		Get: strGet(func(s *v1.Shape) string { return s.GrowType }),
		Set: strSet(func(s *v1.Shape, v string) { s.GrowType = v }),
	},

	"shadows": {
		Group: GroupShadow, Has: func(s *v1.Shape) bool { return len(s.Shadows) > 0 },
		Get: func(s *v1.Shape) interface{} { return s.Shadows },
		Set: func(s *v1.Shape, v interface{}) { s.Shadows, _ = v.([]v1.Shadow) },
	},

	"image-width": {
		Group: GroupImage, Has: func(s *v1.Shape) bool { return s.Type == v1.ShapeImage },
		Get: func(s *v1.Shape) interface{} { return s.ImageWidth },
		Set: func(s *v1.Shape, v interface{}) { s.ImageWidth, _ = v.(int) },
	},
	"image-height": {
		Group: GroupImage, Has: func(s *v1.Shape) bool { return s.Type == v1.ShapeImage },
		Get: func(s *v1.Shape) interface{} { return s.ImageHeight },
		Set: func(s *v1.Shape, v interface{}) { s.ImageHeight, _ = v.(int) },
	},
	"image-keep-aspect-ratio": {
		Group: GroupImage, Has: func(s *v1.Shape) bool { return s.Type == v1.ShapeImage },
		Get: func(s *v1.Shape) interface{} { return s.ImageKeepAspectRatio },
		Set: func(s *v1.Shape, v interface{}) { s.ImageKeepAspectRatio, _ = v.(bool) },
	},
}

// ColorRefRow is one row of the six-entry table spec.md §4.4 describes
// for non-text color propagation: an attribute that carries a
// `*-ref-id`, the field on the library Color it pulls from, and the
// shape attribute it lands in.
type ColorRefRow struct {
	RefIDAttr  string
	RefFileAttr string
	Source     string // "color", "gradient", or "opacity" on the library Color
	Target     string // attribute name in ComponentSyncAttrs
}

// ColorRefTable is spec.md §4.4's six-row table.
var ColorRefTable = []ColorRefRow{
	{RefIDAttr: "fill-color-ref-id", RefFileAttr: "fill-color-ref-file", Source: "color", Target: "fill-color"},
	{RefIDAttr: "fill-color-ref-id", RefFileAttr: "fill-color-ref-file", Source: "gradient", Target: "fill-color-gradient"},
	{RefIDAttr: "fill-color-ref-id", RefFileAttr: "fill-color-ref-file", Source: "opacity", Target: "fill-opacity"},
	{RefIDAttr: "stroke-color-ref-id", RefFileAttr: "stroke-color-ref-file", Source: "color", Target: "stroke-color"},
	{RefIDAttr: "stroke-color-ref-id", RefFileAttr: "stroke-color-ref-file", Source: "gradient", Target: "stroke-color-gradient"},
	{RefIDAttr: "stroke-color-ref-id", RefFileAttr: "stroke-color-ref-file", Source: "opacity", Target: "stroke-opacity"},
}

// AttrNames returns the ComponentSyncAttrs keys in a stable, sorted
// order so callers that iterate the whole table get deterministic
// output (map iteration order in Go is randomized).
func AttrNames() []string {
	names := make([]string, 0, len(ComponentSyncAttrs))
	for name := range ComponentSyncAttrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
