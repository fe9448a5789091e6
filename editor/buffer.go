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
	goed "github.com/timburks/goed/types"
)

// A Buffer holds the lines of the file being edited and a cursor
// that marks the current line. Line numbers are 1-based; a current
// line of 0 means the buffer is empty.
type Buffer struct {
	lines       []*Line
	currentLine int
	modified    bool
	fileName    string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.lines = make([]*Line, 0)
	return b
}

// Load replaces the contents of the buffer.
func (b *Buffer) Load(lines []string) {
	b.lines = make([]*Line, 0, len(lines))
	for _, text := range lines {
		b.lines = append(b.lines, NewLine(text))
	}
	b.currentLine = len(b.lines)
	b.modified = false
}

func (b *Buffer) GetLineCount() int {
	return len(b.lines)
}

func (b *Buffer) GetCurrentLine() int {
	return b.currentLine
}

// SetCurrentLine moves the cursor. Callers resolve addresses first.
func (b *Buffer) SetCurrentLine(index int) {
	b.currentLine = index
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) GetModified() bool {
	return b.modified
}

func (b *Buffer) SetModified(modified bool) {
	b.modified = modified
}

// Get returns the line at a 1-based index.
func (b *Buffer) Get(index int) (*Line, error) {
	if index < 1 || index > len(b.lines) {
		return nil, goed.ErrOutOfRange
	}
	return b.lines[index-1], nil
}

// Advance moves the cursor to the next line and reports whether it moved.
func (b *Buffer) Advance() bool {
	if b.currentLine >= len(b.lines) {
		return false
	}
	b.currentLine++
	return true
}

// Lines returns the text of every line in order.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lines))
	for i, line := range b.lines {
		lines[i] = line.Text
	}
	return lines
}

// InsertBefore inserts lines in order just before index. An index of 0
// is treated as 1 and lineCount+1 appends. The cursor lands on the last
// inserted line.
func (b *Buffer) InsertBefore(index int, lines []string) {
	if index < 1 {
		index = 1
	}
	if index > len(b.lines)+1 {
		index = len(b.lines) + 1
	}
	inserted := make([]*Line, len(lines))
	for i, text := range lines {
		inserted[i] = NewLine(text)
	}
	rest := append(inserted, b.lines[index-1:]...)
	b.lines = append(b.lines[:index-1], rest...)
	b.modified = true
	if len(lines) > 0 {
		b.currentLine = index + len(lines) - 1
	}
}

// DeleteRange removes lines from..to inclusive.
func (b *Buffer) DeleteRange(from, to int) {
	b.lines = append(b.lines[:from-1], b.lines[to:]...)
	b.currentLine = min(from, len(b.lines))
	b.modified = true
}

// TotalByteLength returns the size of the buffer in bytes.
func (b *Buffer) TotalByteLength() int {
	total := 0
	for _, line := range b.lines {
		total += line.Length()
	}
	return total
}
