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
	"github.com/go-logr/logr"

	v1 "github.com/component-sync/engine/api/v1"
	"github.com/component-sync/engine/internal/attrs"
	"github.com/component-sync/engine/internal/change"
	"github.com/component-sync/engine/internal/containers"
	"github.com/component-sync/engine/internal/stats"
)

// SyncShapeInverse is spec.md §4.7's driver: copies a locally-edited
// instance shape's attributes back onto its master, clearing the
// instance's own touched flags, and recurses over its descendants.
func SyncShapeInverse(snap *v1.Snapshot, pageID, shapeID string, log logr.Logger) v1.ChangePair {
	stats.RecordInvocation("sync-shape-inverse")
	page := containers.GetContainer(snap, pageID, "")
	shape := containers.GetShape(page, shapeID)
	if shape == nil {
		return v1.EmptyPair
	}
	component := containers.GetComponent(snap, shape.ComponentID, shape.ComponentFile)
	if component == nil {
		return v1.EmptyPair
	}
	rootShape := shape
	rootComponent := containers.GetComponentRoot(component)
	pageRef := change.Ref{PageID: pageID}

	result := syncShapeInverseNormal(page, component, shape, rootShape, rootComponent, pageRef, log)
	stats.RecordChanges("sync-shape-inverse", len(result.Redo))
	return result
}

// syncShapeInverseNormal generates this node's own pair via
// shapeToComponent, then recurses over its children: descendants that
// are themselves instance roots switch to the nested path; everything
// else continues normally (spec.md §4.7 step 2).
func syncShapeInverseNormal(page v1.Container, component *v1.Component, shape, rootShape, rootComponent *v1.Shape, pageRef change.Ref, log logr.Logger) v1.ChangePair {
	stats.RecordShapesVisited("sync-shape-inverse", 1)
	pairs := []v1.ChangePair{shapeToComponent(page, component, shape, rootShape, rootComponent, pageRef, log)}

	for _, child := range containers.GetChildren(shape.ID, page.GetObjects()) {
		if child.IsInstanceRoot() {
			childRootComponent := rootComponent
			if cs := containers.GetShape(component, child.ShapeRef); cs != nil {
				childRootComponent = cs
			}
			pairs = append(pairs, syncShapeInverseNested(page, component, child, child, childRootComponent, pageRef, log))
		} else {
			pairs = append(pairs, syncShapeInverseNormal(page, component, child, rootShape, rootComponent, pageRef, log))
		}
	}
	return v1.Concat(pairs...)
}

// shapeToComponent implements spec.md §4.7's "shape→component": locate
// shape's master counterpart in component by shape-ref. If absent,
// shape is new on the instance and gets promoted into the component
// (add-shape-to-component); otherwise shape's attributes are copied
// onto the master and shape's own touched flags are cleared.
func shapeToComponent(page v1.Container, component *v1.Component, shape, rootShape, rootComponent *v1.Shape, pageRef change.Ref, log logr.Logger) v1.ChangePair {
	componentShape := containers.GetShape(component, shape.ShapeRef)
	if componentShape == nil {
		log.V(1).Info("add-shape-to-component", "shape", shape.Name)
		return addShapeToComponent(page, component, shape, change.Ref{ComponentID: component.ID})
	}

	componentRef := change.Ref{ComponentID: component.ID}
	masterPair := attrs.UpdateAttrs(componentShape, shape, rootComponent, rootShape, componentRef, attrs.Options{SetTouched: true})
	sourcePair := resetTouchedPair(pageRef, shape)

	// Per spec.md §9 Open Question (b): the source concatenates the
	// master-update pair with the source's reset-touched pair exactly
	// once each. The original appears to concatenate the reset pair with
	// itself (uchanges2 uchanges2); that's a bug and isn't reproduced.
	return v1.Concat(masterPair, sourcePair)
}

// syncShapeInverseNested handles a nested instance-root descendant and
// everything below it. The matching master is still found by shape-ref
// within the same enclosing component, but edits propagate via
// copy-touched rather than clearing the source's touched set: once an
// edit is inside a nested component's own instance, it isn't the
// outermost instance being inverse-synced, so its touched flags should
// land on the nested component's shape instead of being cleared
// (spec.md §8 "Nested propagation").
func syncShapeInverseNested(page v1.Container, component *v1.Component, shape, rootShape, rootComponent *v1.Shape, pageRef change.Ref, log logr.Logger) v1.ChangePair {
	componentShape := containers.GetShape(component, shape.ShapeRef)

	var pair v1.ChangePair
	if componentShape == nil {
		pair = addShapeToComponent(page, component, shape, change.Ref{ComponentID: component.ID})
	} else {
		componentRef := change.Ref{ComponentID: component.ID}
		pair = attrs.UpdateAttrs(componentShape, shape, rootComponent, rootShape, componentRef, attrs.Options{CopyTouched: true})
	}

	pairs := []v1.ChangePair{pair}
	for _, child := range containers.GetChildren(shape.ID, page.GetObjects()) {
		childRootShape, childRootComponent := rootShape, rootComponent
		if child.IsInstanceRoot() {
			childRootShape = child
			if cs := containers.GetShape(component, child.ShapeRef); cs != nil {
				childRootComponent = cs
			}
		}
		pairs = append(pairs, syncShapeInverseNested(page, component, child, childRootShape, childRootComponent, pageRef, log))
	}
	return v1.Concat(pairs...)
}

// resetTouchedPair clears shape's touched set, collapsing to the empty
// pair if it was already clear.
func resetTouchedPair(ref change.Ref, shape *v1.Shape) v1.ChangePair {
	if len(shape.Touched) == 0 {
		return v1.EmptyPair
	}
	b := change.NewModBuilder(ref, shape.ID)
	b.AppendSetTouched(nil, shape.CloneTouched())
	return b.Build()
}

// addShapeToComponent is spec.md §4.6.3's add-shape-to-instance mirrored
// onto the component container: shape (new on the instance, with no
// master counterpart yet) is cloned under the master-side parent - the
// master that shape's own instance-parent points at via shape-ref - and
// the original instance shape's shape-ref is updated to the new master.
func addShapeToComponent(page v1.Container, component *v1.Component, shape *v1.Shape, ref change.Ref) v1.ChangePair {
	var masterParentID string
	if parentInst := containers.GetShape(page, shape.ParentID); parentInst != nil {
		masterParentID = parentInst.ShapeRef
	}

	newRoot, created, _ := containers.CloneObject(shape, masterParentID, page.GetObjects(), containers.NewShapeID, nil, nil)

	var redo, undo []v1.Change
	for _, c := range created {
		redo = append(redo, change.AddObj(ref, c.ParentID, "", nil, c))
	}
	for _, c := range created {
		undo = append(undo, change.DelObj(ref, c.ID))
	}
	clonePair := v1.Pair(redo, undo)

	pageRef := change.Ref{PageID: page.ContainerID()}
	b := change.NewModBuilder(pageRef, shape.ID)
	b.AppendSet("shape-ref", newRoot.ID, shape.ShapeRef, true)

	return v1.Concat(clonePair, b.Build())
}
