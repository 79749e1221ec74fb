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

package containers

import "github.com/google/uuid"

// NewShapeID mints a fresh random shape id, grounded on the same
// approach the pack's yammm module uses for generating stable entity
// ids. This is the IDGenerator CloneObject uses outside of tests.
func NewShapeID() string {
	return uuid.NewString()
}
