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

// Package change builds the tagged-union change records of spec.md §6,
// keeping every redo/undo pair positionally paired (spec.md §5, §9
// "Invertibility") so callers never have to hand-align two slices
// themselves.
package change

import v1 "github.com/component-sync/engine/api/v1"

// Ref names the container a change applies to: exactly one of PageID /
// ComponentID is non-empty.
type Ref struct {
	PageID      string
	ComponentID string
}

func (r Ref) apply(c *v1.Change) {
	c.PageID = r.PageID
	c.ComponentID = r.ComponentID
}

// AddObj builds an add-obj change (spec.md §6).
func AddObj(ref Ref, parentID, frameID string, index *int, obj *v1.Shape) v1.Change {
	c := v1.Change{Kind: v1.KindAddObj, ID: obj.ID, ParentID: parentID, FrameID: frameID, Index: index, Obj: obj}
	ref.apply(&c)
	return c
}

// DelObj builds a del-obj change.
func DelObj(ref Ref, id string) v1.Change {
	c := v1.Change{Kind: v1.KindDelObj, ID: id}
	ref.apply(&c)
	return c
}

// MovObjects builds a mov-objects change (only ever a page-level change
// per spec.md §4.6.4, but Ref is accepted generically for symmetry).
func MovObjects(ref Ref, parentID string, shapes []string, index int) v1.Change {
	c := v1.Change{Kind: v1.KindMovObjects, ParentID: parentID, Shapes: shapes, Index: &index}
	ref.apply(&c)
	return c
}

// RegObjects builds a reg-objects change.
func RegObjects(ref Ref, shapes []string) v1.Change {
	return v1.Change{Kind: v1.KindRegObjects, PageID: ref.PageID, Shapes: shapes}
}

// ModBuilder accumulates the Operations list of a single mod-obj
// redo/undo pair targeting one shape, keeping every appended or
// prepended operation positionally paired between the two lists.
type ModBuilder struct {
	ref     Ref
	id      string
	redoOps []v1.Op
	undoOps []v1.Op
}

// NewModBuilder starts building a mod-obj pair for the shape id in the
// container named by ref.
func NewModBuilder(ref Ref, id string) *ModBuilder {
	return &ModBuilder{ref: ref, id: id}
}

// AppendSet appends a set op to the tail of both lists - used for every
// ordinary attribute in component-sync-attrs (spec.md §4.5).
func (b *ModBuilder) AppendSet(attr string, newVal, oldVal interface{}, ignoreTouched bool) {
	b.redoOps = append(b.redoOps, v1.Op{Kind: v1.OpSet, Attr: attr, Val: newVal, IgnoreTouched: ignoreTouched})
	b.undoOps = append(b.undoOps, v1.Op{Kind: v1.OpSet, Attr: attr, Val: oldVal, IgnoreTouched: ignoreTouched})
}

// PrependSet prepends a set op to the head of both lists. UpdateAttrs
// does not call it: it appends x/y before any other op, so they already
// sit at the head of the operation list.
func (b *ModBuilder) PrependSet(attr string, newVal, oldVal interface{}, ignoreTouched bool) {
	b.redoOps = append([]v1.Op{{Kind: v1.OpSet, Attr: attr, Val: newVal, IgnoreTouched: ignoreTouched}}, b.redoOps...)
	b.undoOps = append([]v1.Op{{Kind: v1.OpSet, Attr: attr, Val: oldVal, IgnoreTouched: ignoreTouched}}, b.undoOps...)
}

// AppendSetTouched appends a set-touched op to both lists - used by
// reset-touched? and copy-touched? (spec.md §4.5).
func (b *ModBuilder) AppendSetTouched(redoTouched, undoTouched map[string]struct{}) {
	b.redoOps = append(b.redoOps, v1.Op{Kind: v1.OpSetTouched, Touched: redoTouched})
	b.undoOps = append(b.undoOps, v1.Op{Kind: v1.OpSetTouched, Touched: undoTouched})
}

// Empty reports whether any operation has been accumulated yet.
func (b *ModBuilder) Empty() bool {
	return len(b.redoOps) == 0
}

// Build finalizes the pair. An empty builder yields the canonical empty
// pair (spec.md §4.4 "Pairs with no operations collapse to the empty
// change pair").
func (b *ModBuilder) Build() v1.ChangePair {
	if b.Empty() {
		return v1.EmptyPair
	}
	redo := v1.Change{Kind: v1.KindModObj, ID: b.id, Operations: b.redoOps}
	undo := v1.Change{Kind: v1.KindModObj, ID: b.id, Operations: b.undoOps}
	b.ref.apply(&redo)
	b.ref.apply(&undo)
	return v1.ChangePair{Redo: []v1.Change{redo}, Undo: []v1.Change{undo}}
}
