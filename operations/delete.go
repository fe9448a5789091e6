//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package operations

import (
	goed "github.com/timburks/goed/types"
)

// Delete

type Delete struct {
	operation
}

func NewDelete(r goed.Range) *Delete {
	return &Delete{operation: operation{Range: r}}
}

func (op *Delete) Perform(e goed.Editor) error {
	if err := op.check(e); err != nil {
		return err
	}
	e.GetBuffer().DeleteRange(op.Range.From, op.Range.To)
	return nil
}
