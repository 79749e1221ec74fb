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

// SyncShapeAndChildren is the instance/master reconciler entry point
// (spec.md §4.6 "sync-shape-and-children"). shapeID names the instance
// root on the page or component container selected by pageID/componentID.
// reset clears touched flags along the way instead of honoring them -
// used by hosts offering a "reset to master" action.
func SyncShapeAndChildren(snap *v1.Snapshot, pageID, componentID, shapeID string, reset bool, log logr.Logger) v1.ChangePair {
	stats.RecordInvocation("sync-shape-and-children")
	container := containers.GetContainer(snap, pageID, componentID)
	shapeInst := containers.GetShape(container, shapeID)
	if shapeInst == nil {
		return v1.EmptyPair
	}
	component := containers.GetComponent(snap, shapeInst.ComponentID, shapeInst.ComponentFile)
	if component == nil {
		return v1.EmptyPair
	}
	shapeMaster := containers.GetShape(component, shapeInst.ShapeRef)
	if shapeMaster == nil {
		return v1.EmptyPair
	}

	rootShape := shapeInst
	rootComponent := containers.GetComponentRoot(component)
	ref := change.Ref{PageID: pageID, ComponentID: componentID}
	opts := attrs.Options{OmitTouched: !reset, ResetTouched: reset}

	result := syncNormal(snap, container, component, shapeInst, shapeMaster, rootShape, rootComponent, ref, opts, log)
	stats.RecordChanges("sync-shape-and-children", len(result.Redo))
	return result
}

// syncNormal is spec.md §4.6's recursion: one mod-obj pair for the
// current node (via update-attrs), then a diff of its children against
// the master's children, recursing into every matched pair.
func syncNormal(snap *v1.Snapshot, container v1.Container, component *v1.Component, inst, master, rootShape, rootComponent *v1.Shape, ref change.Ref, opts attrs.Options, log logr.Logger) v1.ChangePair {
	stats.RecordShapesVisited("sync-shape-and-children", 1)
	// Step 1: a nested instance root rebinds the roots used for this
	// subtree's positional math to itself and its own master.
	if inst.IsInstanceRoot() {
		rootShape = inst
		rootComponent = master
	}

	pairs := []v1.ChangePair{attrs.UpdateAttrs(inst, master, rootShape, rootComponent, ref, opts)}

	instChildren := containers.GetChildren(inst.ID, container.GetObjects())
	masterChildren := containers.GetChildren(master.ID, component.GetObjects())

	for _, a := range compareChildren(instChildren, masterChildren) {
		switch a.kind {
		case actionOnlyInst:
			log.V(1).Info("remove-shape", "shape", a.inst.Name)
			pairs = append(pairs, removeShape(container, ref, a.inst))
		case actionOnlyMaster:
			log.V(1).Info("add-shape-to-instance", "shape", a.master.Name, "parent", inst.Name)
			pairs = append(pairs, addShapeToInstance(component, container, ref, inst, a.master))
		case actionMatched:
			pairs = append(pairs, syncNormal(snap, container, component, a.inst, a.master, rootShape, rootComponent, ref, childOptions(a.inst, opts), log))
		case actionMoved:
			pairs = append(pairs, syncNormal(snap, container, component, a.inst, a.master, rootShape, rootComponent, ref, childOptions(a.inst, opts), log))
			pairs = append(pairs, movObjects(ref, a.inst, a.indexBefore, a.indexAfter))
		}
	}
	return v1.Concat(pairs...)
}

// childOptions computes the options matched-child recursion uses
// (spec.md §4.6 step 3 "Recursive options for matched children"):
// nested instance roots always propagate (rather than suppress) their
// own touched flags downward; ordinary matched children inherit the
// parent's options unchanged.
func childOptions(child *v1.Shape, parent attrs.Options) attrs.Options {
	if child.IsInstanceRoot() {
		return attrs.Options{OmitTouched: false, ResetTouched: false, SetTouched: false, CopyTouched: true}
	}
	return parent
}

type childActionKind int

const (
	actionMatched childActionKind = iota
	actionOnlyInst
	actionOnlyMaster
	actionMoved
)

type childAction struct {
	kind                   childActionKind
	inst, master           *v1.Shape
	indexBefore, indexAfter int
}

// compareChildren implements spec.md §4.6.1: walking two ordered child
// lists and emitting one action per pairing, with a fallback O(n²)
// search (spec.md §9 "Tree diffing with rename-stable ids") when the
// heads don't match directly - covering reordered and one-sided
// children.
func compareChildren(instChildren, masterChildren []*v1.Shape) []childAction {
	indexBefore := make(map[string]int, len(instChildren))
	for i, c := range instChildren {
		indexBefore[c.ID] = i
	}
	indexAfter := make(map[string]int, len(masterChildren))
	for i, c := range masterChildren {
		indexAfter[c.ID] = i
	}

	li := append([]*v1.Shape(nil), instChildren...)
	lm := append([]*v1.Shape(nil), masterChildren...)

	var actions []childAction
	for len(li) > 0 || len(lm) > 0 {
		if len(li) == 0 {
			for _, cm := range lm {
				actions = append(actions, childAction{kind: actionOnlyMaster, master: cm})
			}
			break
		}
		if len(lm) == 0 {
			for _, ci := range li {
				actions = append(actions, childAction{kind: actionOnlyInst, inst: ci})
			}
			break
		}

		ci, cm := li[0], lm[0]
		if containers.IsMasterOf(cm, ci) {
			actions = append(actions, childAction{kind: actionMatched, inst: ci, master: cm})
			li, lm = li[1:], lm[1:]
			continue
		}

		ciPrimeIdx := -1
		for i, c := range li {
			if containers.IsMasterOf(cm, c) {
				ciPrimeIdx = i
				break
			}
		}
		cmPrimeIdx := -1
		for i, c := range lm {
			if containers.IsMasterOf(c, ci) {
				cmPrimeIdx = i
				break
			}
		}

		switch {
		case ciPrimeIdx == -1:
			actions = append(actions, childAction{kind: actionOnlyMaster, master: cm})
			lm = lm[1:]
		case cmPrimeIdx == -1:
			actions = append(actions, childAction{kind: actionOnlyInst, inst: ci})
			li = li[1:]
		default:
			ciPrime := li[ciPrimeIdx]
			actions = append(actions, childAction{
				kind: actionMoved, inst: ciPrime, master: cm,
				indexBefore: indexBefore[ciPrime.ID], indexAfter: indexAfter[cm.ID],
			})
			li = append(append([]*v1.Shape(nil), li[:ciPrimeIdx]...), li[ciPrimeIdx+1:]...)
			lm = lm[1:]
		}
	}
	return actions
}

// removeShape implements spec.md §4.6.2: a single del-obj redo,
// undone by re-inserting the removed shape and every descendant
// (reconstructed from the container's objects before removal) in
// increasing-depth order, followed by one reg-objects listing the
// removed shape's ancestors.
func removeShape(container v1.Container, ref change.Ref, shape *v1.Shape) v1.ChangePair {
	objects := container.GetObjects()
	redo := []v1.Change{change.DelObj(ref, shape.ID)}

	var undo []v1.Change
	queue := []*v1.Shape{shape}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		var indexPtr *int
		if idx := containers.PositionOnParent(s.ID, objects); idx >= 0 {
			indexPtr = &idx
		}
		undo = append(undo, change.AddObj(ref, s.ParentID, s.FrameID, indexPtr, s.Clone()))
		for _, cid := range s.Shapes {
			if c := objects[cid]; c != nil {
				queue = append(queue, c)
			}
		}
	}
	undo = append(undo, change.RegObjects(ref, containers.GetParents(shape.ID, objects)))

	return v1.ChangePair{Redo: redo, Undo: undo}
}

// addShapeToInstance implements spec.md §4.6.3: cloning the master
// subtree rooted at masterChild under instParent (the instance
// descendant of masterChild's parent - always the node compare-children
// is currently diffing the children of), stamping every clone's
// shape-ref at the specific master node it came from and its frame-id
// at instParent's frame.
func addShapeToInstance(component *v1.Component, container v1.Container, ref change.Ref, instParent, masterChild *v1.Shape) v1.ChangePair {
	_, created, _ := containers.CloneObject(masterChild, instParent.ID, component.GetObjects(), containers.NewShapeID,
		func(clone, original *v1.Shape) {
			clone.ShapeRef = original.ID
			clone.FrameID = instParent.FrameID
		}, nil)

	var redo, undo []v1.Change
	for _, c := range created {
		var idx *int
		if c.ParentID == instParent.ID {
			i := len(instParent.Shapes)
			idx = &i
		}
		redo = append(redo, change.AddObj(ref, c.ParentID, c.FrameID, idx, c))
	}
	for _, c := range created {
		undo = append(undo, change.DelObj(ref, c.ID))
	}
	return v1.ChangePair{Redo: redo, Undo: undo}
}

// movObjects implements spec.md §4.6.4.
func movObjects(ref change.Ref, inst *v1.Shape, indexBefore, indexAfter int) v1.ChangePair {
	redo := change.MovObjects(ref, inst.ParentID, []string{inst.ID}, indexAfter)
	undo := change.MovObjects(ref, inst.ParentID, []string{inst.ID}, indexBefore)
	return v1.ChangePair{Redo: []v1.Change{redo}, Undo: []v1.Change{undo}}
}
