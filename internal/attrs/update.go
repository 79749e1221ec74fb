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

// Package attrs implements the attribute updater of spec.md §4.5:
// copying component-sync-attrs from an origin shape to a destination
// shape, honoring the touched-group policy and the four boolean options
// update-attrs is parameterized by.
package attrs

import (
	v1 "github.com/component-sync/engine/api/v1"
	"github.com/component-sync/engine/internal/change"
	"github.com/component-sync/engine/internal/config"
	"github.com/component-sync/engine/internal/geometry"
	"github.com/component-sync/engine/internal/stats"
)

// Options are the four booleans spec.md §4.5 parameterizes update-attrs
// by.
type Options struct {
	// OmitTouched skips attributes whose group is in dest.Touched.
	OmitTouched bool
	// ResetTouched appends a `set-touched nil` to the redo and restores
	// dest.Touched in the undo.
	ResetTouched bool
	// SetTouched, when true, makes emitted sets carry IgnoreTouched=false
	// so they register as overrides; otherwise IgnoreTouched=true.
	SetTouched bool
	// CopyTouched appends `set-touched origin.Touched` to the redo and
	// restores dest.Touched in the undo.
	CopyTouched bool
}

// UpdateAttrs produces a mod-obj pair targeting dest, copying every
// attribute in config.ComponentSyncAttrs (minus x/y, handled separately
// below) from origin, per spec.md §4.5. destRoot/originRoot are the
// instance/master roots used to compute dest's new position relative to
// origin's offset within originRoot (spec.md §4.7).
func UpdateAttrs(dest, origin, destRoot, originRoot *v1.Shape, ref change.Ref, opts Options) v1.ChangePair {
	b := change.NewModBuilder(ref, dest.ID)

	// Positional attributes are computed from the origin's offset within
	// its root, not copied verbatim, and are never subject to the
	// touched-group policy (spec.md §4.5 "handled separately").
	pos := geometry.Reposition(origin, originRoot, destRoot)
	if pos.X != dest.X {
		b.AppendSet("x", pos.X, dest.X, true)
	}
	if pos.Y != dest.Y {
		b.AppendSet("y", pos.Y, dest.Y, true)
	}

	for _, name := range config.AttrNames() {
		spec := config.ComponentSyncAttrs[name]
		if !spec.Has(dest) {
			continue
		}
		if opts.OmitTouched && dest.IsTouched(spec.Group) {
			stats.RecordTouchedSkip()
			continue
		}
		newVal := spec.Get(origin)
		oldVal := spec.Get(dest)
		if equalValue(newVal, oldVal) {
			continue
		}
		b.AppendSet(name, newVal, oldVal, !opts.SetTouched)
	}

	// Per spec.md §9 Open Question (a): when CopyTouched is set, the
	// redo uses origin's touched set while the undo restores dest's -
	// this asymmetry is preserved verbatim, not "fixed".
	if opts.ResetTouched {
		b.AppendSetTouched(nil, dest.CloneTouched())
	} else if opts.CopyTouched {
		b.AppendSetTouched(origin.CloneTouched(), dest.CloneTouched())
	}

	return b.Build()
}

// Apply mutates dest according to a mod-obj change's operations. It is
// not called by the engine itself (the engine never applies its own
// output - spec.md §2 "inputs are data, outputs are data") but is used
// by tests to validate the round-trip property of spec.md §8, and is
// the reference the host's own apply layer would model itself on.
func Apply(dest *v1.Shape, ops []v1.Op) {
	for _, op := range ops {
		switch op.Kind {
		case v1.OpSet:
			if spec, ok := config.ComponentSyncAttrs[op.Attr]; ok {
				spec.Set(dest, op.Val)
				if !op.IgnoreTouched {
					dest.SetTouched(spec.Group)
				}
				continue
			}
			switch op.Attr {
			case "x":
				dest.X, _ = op.Val.(float64)
			case "y":
				dest.Y, _ = op.Val.(float64)
			}
		case v1.OpSetTouched:
			dest.Touched = op.Touched
		}
	}
}
