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

package v1

// ChangeKind is the tag of the change-record union (spec.md §6).
type ChangeKind string

const (
	KindAddObj     ChangeKind = "add-obj"
	KindDelObj     ChangeKind = "del-obj"
	KindModObj     ChangeKind = "mod-obj"
	KindMovObjects ChangeKind = "mov-objects"
	KindRegObjects ChangeKind = "reg-objects"
)

// OpKind is the tag of the operation union nested inside a mod-obj
// change.
type OpKind string

const (
	OpSet        OpKind = "set"
	OpSetTouched OpKind = "set-touched"
)

// Op is one operation inside a mod-obj change's Operations list
// (spec.md §6: "set{attr, val, ignore-touched?} or set-touched{touched}").
type Op struct {
	Kind OpKind `json:"kind"`

	// Set fields.
	Attr          string      `json:"attr,omitempty"`
	Val           interface{} `json:"val,omitempty"`
	IgnoreTouched bool        `json:"ignoreTouched,omitempty"`

	// SetTouched fields. A nil Touched clears every group.
	Touched map[string]struct{} `json:"touched,omitempty"`
}

// Change is one record in a redo or undo list. Exactly one of PageID /
// ComponentID is non-null, naming the container the change applies to
// (spec.md §6).
type Change struct {
	Kind ChangeKind `json:"kind"`

	ID          string `json:"id,omitempty"`
	PageID      string `json:"pageId,omitempty"`
	ComponentID string `json:"componentId,omitempty"`

	// add-obj
	ParentID string `json:"parentId,omitempty"`
	FrameID  string `json:"frameId,omitempty"`
	Index    *int   `json:"index,omitempty"`
	Obj      *Shape `json:"obj,omitempty"`

	// mod-obj
	Operations []Op `json:"operations,omitempty"`

	// mov-objects / reg-objects
	Shapes []string `json:"shapes,omitempty"`
}

// ChangePair is the (redo, undo) result every engine entry point
// produces (spec.md §6 GLOSSARY "Change pair").
type ChangePair struct {
	Redo []Change `json:"redo"`
	Undo []Change `json:"undo"`
}

// Empty reports whether the pair has no operations at all - the
// canonical "no-op" result (spec.md §4.3, §8 "Empty-on-no-op").
func (p ChangePair) Empty() bool {
	return len(p.Redo) == 0 && len(p.Undo) == 0
}

// EmptyPair is the canonical no-op change pair.
var EmptyPair = ChangePair{}

// Concat concatenates change pairs preserving order, as spec.md §4.3
// requires ("concat-changes"): redo lists and undo lists are each
// appended in the same relative order. Per spec.md §9 design note (c),
// only concat-changes is used anywhere in this engine; cons-changes
// (prepending a single record) has no caller and is intentionally not
// implemented - see DESIGN.md.
func Concat(pairs ...ChangePair) ChangePair {
	out := ChangePair{}
	for _, p := range pairs {
		out.Redo = append(out.Redo, p.Redo...)
		out.Undo = append(out.Undo, p.Undo...)
	}
	return out
}

// Pair bundles a redo and undo list that were built up as matching
// slices, e.g. by a loop that appends to both in lockstep.
func Pair(redo, undo []Change) ChangePair {
	return ChangePair{Redo: redo, Undo: undo}
}
