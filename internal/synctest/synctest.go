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

// Package synctest builds shape trees, containers, and snapshots from
// compact declarative descriptions, the way the teacher's foresttest
// package turns a short string into a whole namespace forest. A shape
// tree has too many independently-meaningful fields (type, geometry,
// shape-ref, touched groups) to fit in a one-rune-per-node alphabet, so
// Node is a small recursive struct instead of a string - but the idea is
// the same: describe a tree once, declaratively, and let Build wire up
// every ParentID/FrameID/Shapes back-reference.
package synctest

import (
	v1 "github.com/component-sync/engine/api/v1"
)

// Node declaratively describes one shape and its children. Only ID is
// required; everything else defaults to its zero value. Node has no
// frame-id of its own: Build stamps every node with the frameID it is
// given.
type Node struct {
	ID   string
	Type v1.ShapeType
	Name string

	X, Y, Width, Height float64

	ComponentID   string
	ComponentFile string
	ShapeRef      string

	FillColorRefID   string
	FillColorRefFile string
	FillColor        string
	FillOpacity      float64

	StrokeColorRefID   string
	StrokeColorRefFile string
	StrokeColor        string

	Content *v1.ContentNode

	Touched  []string
	Children []Node
}

// Build recursively materializes n (and its descendants) into objects,
// parenting the root under parentID and stamping every node's frame-id
// to frameID. It returns the root shape.
func Build(objects map[string]*v1.Shape, parentID, frameID string, n Node) *v1.Shape {
	shapeType := n.Type
	if shapeType == "" {
		shapeType = v1.ShapeRect
	}
	s := &v1.Shape{
		ID:                 n.ID,
		Name:               n.Name,
		Type:               shapeType,
		ParentID:           parentID,
		FrameID:            frameID,
		X:                  n.X,
		Y:                  n.Y,
		Width:              n.Width,
		Height:             n.Height,
		ComponentID:        n.ComponentID,
		ComponentFile:      n.ComponentFile,
		ShapeRef:           n.ShapeRef,
		FillColorRefID:     n.FillColorRefID,
		FillColorRefFile:   n.FillColorRefFile,
		FillColor:          n.FillColor,
		FillOpacity:        n.FillOpacity,
		StrokeColorRefID:   n.StrokeColorRefID,
		StrokeColorRefFile: n.StrokeColorRefFile,
		StrokeColor:        n.StrokeColor,
		Content:            n.Content,
	}
	if n.Name == "" {
		s.Name = n.ID
	}
	for _, group := range n.Touched {
		s.SetTouched(group)
	}

	objects[s.ID] = s
	for _, child := range n.Children {
		built := Build(objects, s.ID, frameID, child)
		s.Shapes = append(s.Shapes, built.ID)
	}
	return s
}

// Page builds a single-tree page: root becomes the page's own root
// frame, and every descendant is stamped with that frame's id.
func Page(id string, root Node) *v1.Page {
	objects := map[string]*v1.Shape{}
	built := Build(objects, "", root.ID, root)
	return &v1.Page{ID: id, Name: id, RootFrameID: built.ID, Objects: objects}
}

// Component builds a single-tree component from root. No frame-id is
// stamped, and ComponentRoot is not set on any shape.
func Component(id, path string, root Node) *v1.Component {
	objects := map[string]*v1.Shape{}
	built := Build(objects, "", "", root)
	return &v1.Component{ID: id, Name: id, Path: path, RootID: built.ID, Objects: objects}
}

// SnapshotBuilder accumulates pages and library data for one local file,
// plus any number of external libraries, before producing a Snapshot.
type SnapshotBuilder struct {
	localFileID string
	pages       v1.PageIndex
	local       v1.LibraryData
	externals   map[string]*v1.LibraryData
}

// NewSnapshot starts a builder for the local file identified by
// localFileID (use "" if the scenario never needs to distinguish it from
// "no file").
func NewSnapshot(localFileID string) *SnapshotBuilder {
	return &SnapshotBuilder{
		localFileID: localFileID,
		pages:       v1.PageIndex{},
		local: v1.LibraryData{
			Colors:       map[string]*v1.Color{},
			Typographies: map[string]*v1.Typography{},
			Components:   map[string]*v1.Component{},
			Media:        map[string]*v1.MediaAsset{},
		},
		externals: map[string]*v1.LibraryData{},
	}
}

func (b *SnapshotBuilder) WithPage(p *v1.Page) *SnapshotBuilder {
	b.pages[p.ID] = p
	return b
}

func (b *SnapshotBuilder) WithComponent(c *v1.Component) *SnapshotBuilder {
	b.local.Components[c.ID] = c
	return b
}

func (b *SnapshotBuilder) WithColor(c *v1.Color) *SnapshotBuilder {
	b.local.Colors[c.ID] = c
	return b
}

func (b *SnapshotBuilder) WithTypography(t *v1.Typography) *SnapshotBuilder {
	b.local.Typographies[t.ID] = t
	return b
}

// WithExternalLibrary registers libraryID's component/color/typography
// maps so that shapes whose *-ref-file points outside the local file
// still resolve (spec.md §3 "the special value 'local'... any other
// value names an external library file").
func (b *SnapshotBuilder) WithExternalLibrary(libraryID string, lib *v1.LibraryData) *SnapshotBuilder {
	b.externals[libraryID] = lib
	return b
}

func (b *SnapshotBuilder) Build() *v1.Snapshot {
	return &v1.Snapshot{
		LocalFileID: b.localFileID,
		WorkspaceData: v1.WorkspaceData{
			Pages:       b.pages,
			LibraryData: b.local,
		},
		WorkspaceLibraries: b.externals,
	}
}
