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

package attrs

import "github.com/google/go-cmp/cmp"

// equalValue reports whether two attribute values (as returned by an
// AttrSpec.Get) are the same, so update-attrs can skip emitting a set op
// for attributes that wouldn't actually change anything - this is what
// makes the "Empty-on-no-op" property (spec.md §8) hold for the
// attribute-updater component.
func equalValue(a, b interface{}) bool {
	return cmp.Equal(a, b)
}
