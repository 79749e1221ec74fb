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

// Package containers implements the shape & container accessors of
// spec.md §4.1: resolving a page or component from a snapshot, walking
// its shape tree by id, and cloning a subtree for instance/component
// grafting. Unlike the teacher's forest package, there is no shared,
// locked registry here - every function is a pure read of the snapshot
// it's given (see SPEC_FULL.md §6 Concurrency).
package containers

import (
	"fmt"

	v1 "github.com/component-sync/engine/api/v1"
)

// GetContainer resolves the page if pageID is non-empty, else the
// component with the given id. Exactly one of pageID/componentID must be
// non-empty (spec.md §4.1).
func GetContainer(snap *v1.Snapshot, pageID, componentID string) v1.Container {
	if pageID != "" {
		p := snap.WorkspaceData.Pages[pageID]
		if p == nil {
			return nil
		}
		return p
	}
	c := snap.WorkspaceData.Components[componentID]
	if c == nil {
		return nil
	}
	return c
}

// GetShape returns the shape with the given id in the container, or nil.
func GetShape(c v1.Container, id string) *v1.Shape {
	if c == nil {
		return nil
	}
	return c.GetObjects()[id]
}

// GetParents returns the chain of ancestor ids for id, nearest first,
// ending at (but not including) the container root's parent (which is
// empty).
func GetParents(id string, objects map[string]*v1.Shape) []string {
	var out []string
	cur := objects[id]
	for cur != nil && cur.ParentID != "" {
		out = append(out, cur.ParentID)
		cur = objects[cur.ParentID]
	}
	return out
}

// GetChildren returns the direct children of id, in order, resolved from
// the objects map (the Shape.Shapes slice only stores ids).
func GetChildren(id string, objects map[string]*v1.Shape) []*v1.Shape {
	s := objects[id]
	if s == nil {
		return nil
	}
	out := make([]*v1.Shape, 0, len(s.Shapes))
	for _, cid := range s.Shapes {
		if c := objects[cid]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// PositionOnParent returns the zero-based index of id within its
// parent's child list, or -1 if id has no parent or isn't listed.
func PositionOnParent(id string, objects map[string]*v1.Shape) int {
	s := objects[id]
	if s == nil || s.ParentID == "" {
		return -1
	}
	parent := objects[s.ParentID]
	if parent == nil {
		return -1
	}
	for i, cid := range parent.Shapes {
		if cid == id {
			return i
		}
	}
	return -1
}

// GetComponent resolves the component with componentID, treating an
// empty componentFile (or one equal to the snapshot's own file id) as
// "local" (spec.md §4.1).
func GetComponent(snap *v1.Snapshot, componentID, componentFile string) *v1.Component {
	lib := snap.LibraryFor(snap.ResolveLibraryID(componentFile))
	if lib == nil {
		return nil
	}
	return lib.Components[componentID]
}

// GetComponentRoot returns the single root shape of a component.
func GetComponentRoot(c *v1.Component) *v1.Shape {
	if c == nil {
		return nil
	}
	return c.Objects[c.RootID]
}

// IsMasterOf reports whether instance's shape-ref points at master
// (spec.md §4.1).
func IsMasterOf(master, instance *v1.Shape) bool {
	if master == nil || instance == nil {
		return false
	}
	return instance.ShapeRef == master.ID
}

// IDGenerator mints fresh shape ids for CloneObject. Production callers
// use NewShapeID; tests supply a deterministic sequence so expected
// change records are stable.
type IDGenerator func() string

// TransformFn is a hook CloneObject invokes once per shape it visits,
// given both the shape being touched (clone or original) and the
// original shape it was cloned from, so a hook can e.g. point a clone's
// shape-ref back at the specific master node it came from (spec.md
// §4.1: "transform-new, transform-original ... user hooks invoked for
// each cloned/original shape"). Either hook may be nil.
type TransformFn func(s *v1.Shape, original *v1.Shape)

// CloneObject deep-clones the subtree rooted at root (looked up in
// objects), parenting the clone under newParentID, assigning every
// cloned shape a fresh id via gen. It returns the new root, every newly
// created shape (top-down, including the root), and every original
// shape that transformOriginal touched (spec.md §4.1).
func CloneObject(
	root *v1.Shape,
	newParentID string,
	objects map[string]*v1.Shape,
	gen IDGenerator,
	transformNew, transformOriginal TransformFn,
) (newRoot *v1.Shape, created []*v1.Shape, updatedOriginals []*v1.Shape) {
	if root == nil {
		return nil, nil, nil
	}

	idMap := map[string]string{}
	var walk func(s *v1.Shape, parentID string)
	walk = func(s *v1.Shape, parentID string) {
		idMap[s.ID] = gen()
		for _, cid := range s.Shapes {
			if c := objects[cid]; c != nil {
				walk(c, s.ID)
			}
		}
	}
	walk(root, newParentID)

	// Shapes are cloned and recorded top-down (parent before child) so
	// that replaying the resulting add-obj records in order never
	// references a parent that hasn't been added yet (spec.md §4.6.3).
	var build func(s *v1.Shape, parentID string) *v1.Shape
	build = func(s *v1.Shape, parentID string) *v1.Shape {
		clone := s.Clone()
		clone.ID = idMap[s.ID]
		clone.ParentID = parentID
		if transformNew != nil {
			transformNew(clone, s)
		}
		created = append(created, clone)
		if transformOriginal != nil {
			transformOriginal(s, s)
			updatedOriginals = append(updatedOriginals, s)
		}
		newShapes := make([]string, 0, len(s.Shapes))
		for _, cid := range s.Shapes {
			if c := objects[cid]; c != nil {
				built := build(c, clone.ID)
				newShapes = append(newShapes, built.ID)
			}
		}
		clone.Shapes = newShapes
		return clone
	}

	newRoot = build(root, newParentID)
	return newRoot, created, updatedOriginals
}

// String is a debugging helper used by drivers' trace logs.
func String(c v1.Container) string {
	if c == nil {
		return "<nil container>"
	}
	return fmt.Sprintf("%s(root=%s)", c.ContainerID(), c.RootShapeID())
}
