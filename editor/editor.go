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
package editor

import (
	"fmt"
	"io"
	"log"

	goed "github.com/timburks/goed/types"
)

// The Editor applies operations to a single buffer and writes
// everything the user should see to its output.
type Editor struct {
	buffer  *Buffer
	storage goed.Storage
	out     io.Writer
}

func NewEditor(storage goed.Storage, out io.Writer) *Editor {
	return &Editor{buffer: NewBuffer(), storage: storage, out: out}
}

func (e *Editor) GetBuffer() goed.Buffer {
	return e.buffer
}

// ReadFile loads a file into the buffer and prints its size.
// The name is remembered even if the file can't be read.
func (e *Editor) ReadFile(path string) error {
	e.buffer.SetFileName(path)
	lines, err := e.storage.ReadLines(path)
	if err != nil {
		return err
	}
	e.buffer.Load(lines)
	_, err = fmt.Fprintf(e.out, "%d\n", e.buffer.TotalByteLength())
	return err
}

// WriteFile prints the size of the buffer and saves it to path.
func (e *Editor) WriteFile(path string) error {
	if _, err := fmt.Fprintf(e.out, "%d\n", e.buffer.TotalByteLength()); err != nil {
		return err
	}
	if err := e.storage.WriteLines(path, e.buffer.Lines()); err != nil {
		log.Printf("write %s: %v", path, err)
		return goed.ErrCannotOpenOutputFile
	}
	e.buffer.SetModified(false)
	return nil
}

// PrintLines prints a range of lines, optionally numbered, and leaves
// the cursor on the last one.
func (e *Editor) PrintLines(r goed.Range, numbered bool) error {
	for i := r.From; i <= r.To; i++ {
		line, err := e.buffer.Get(i)
		if err != nil {
			return err
		}
		if numbered {
			_, err = fmt.Fprintf(e.out, "%d\t%s", i, line.DisplayText())
		} else {
			_, err = io.WriteString(e.out, line.DisplayText())
		}
		if err != nil {
			return err
		}
		e.buffer.SetCurrentLine(i)
	}
	return nil
}

// Perform runs an operation against this editor.
func (e *Editor) Perform(op goed.Operation) error {
	return op.Perform(e)
}

// Print writes text that is not buffer content, such as an error marker.
func (e *Editor) Print(text string) error {
	_, err := io.WriteString(e.out, text)
	return err
}
