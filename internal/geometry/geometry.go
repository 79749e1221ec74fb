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

// Package geometry implements the relative-repositioning helper of
// spec.md §4.7: computing a moved shape's new absolute position from its
// offset within the origin root, reapplied to the destination root.
package geometry

import v1 "github.com/component-sync/engine/api/v1"

// Position is an absolute x/y pair.
type Position struct {
	X float64
	Y float64
}

// Reposition computes origin's new absolute position relative to
// destRoot, preserving origin's offset from originRoot (spec.md §4.5
// "Positional attributes", §4.7, and the worked example in §8 scenario
// 6: master at (100,200), master-child at (150,230), instance root at
// (300,400) => new instance-child position (350,430)).
func Reposition(origin, originRoot, destRoot *v1.Shape) Position {
	offsetX := origin.X - originRoot.X
	offsetY := origin.Y - originRoot.Y
	return Position{X: destRoot.X + offsetX, Y: destRoot.Y + offsetY}
}
