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

// Write

type Write struct {
	FileName string
}

// Perform writes to the named file, falling back to the buffer's file name.
// A buffer without a file name adopts the one it was written to.
func (op *Write) Perform(e goed.Editor) error {
	b := e.GetBuffer()
	path := op.FileName
	if path == "" {
		path = b.GetFileName()
	}
	if path == "" {
		return goed.ErrNoCurrentFilename
	}
	if err := e.WriteFile(path); err != nil {
		return err
	}
	if b.GetFileName() == "" {
		b.SetFileName(path)
	}
	return nil
}
