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

// operation holds the resolved lines that an operation acts on.
type operation struct {
	Range goed.Range
}

func (op *operation) check(e goed.Editor) error {
	b := e.GetBuffer()
	if op.Range.From < 1 || op.Range.From > op.Range.To || op.Range.To > b.GetLineCount() {
		return goed.ErrInvalidAddress
	}
	return nil
}
