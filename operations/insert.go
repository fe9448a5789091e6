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

// Insert collects lines typed in insert mode. Each line lands in the
// buffer as soon as it is added.

type Insert struct {
	Position  int      // line that new text is inserted before
	Lines     []string // lines inserted so far
	Commander goed.Commander
	editor    goed.Editor
}

func (op *Insert) Perform(e goed.Editor) error {
	b := e.GetBuffer()
	if op.Position < 1 {
		op.Position = 1
	}
	if op.Position > b.GetLineCount()+1 {
		return goed.ErrInvalidAddress
	}
	op.editor = e
	op.Lines = make([]string, 0)
	if op.Commander != nil {
		op.Commander.SetMode(goed.ModeInsert)
	}
	return nil
}

func (op *Insert) AddLine(line string) {
	b := op.editor.GetBuffer()
	b.InsertBefore(op.Position+len(op.Lines), []string{line})
	op.Lines = append(op.Lines, line)
}

// Close ends insert mode. If nothing was typed the cursor is left on
// the addressed line.
func (op *Insert) Close() {
	b := op.editor.GetBuffer()
	if len(op.Lines) == 0 {
		b.SetCurrentLine(min(op.Position, b.GetLineCount()))
	}
	b.SetModified(true)
	if op.Commander != nil {
		op.Commander.SetMode(goed.ModeCommand)
	}
}

func (op *Insert) Length() int {
	return len(op.Lines)
}
