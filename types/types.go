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
package types

// Commander modes
const (
	ModeCommand = 0
	ModeInsert  = 1
	ModeQuit    = 9999
)

// A Range is a pair of resolved 1-based line numbers.
type Range struct {
	From int
	To   int
}

type Buffer interface {
	GetLineCount() int
	GetCurrentLine() int
	SetCurrentLine(index int)
	GetFileName() string
	SetFileName(name string)
	GetModified() bool
	SetModified(modified bool)
	Lines() []string
	InsertBefore(index int, lines []string)
	DeleteRange(from, to int)
	TotalByteLength() int
	Advance() bool
	ResolveLine(token string) int
	ResolveRange(expr string) (Range, error)
	ResolveRangeOrCurrent(expr string) (Range, error)
}

type Editor interface {
	GetBuffer() Buffer
	PrintLines(r Range, numbered bool) error
	WriteFile(path string) error
}

type Operation interface {
	Perform(e Editor) error
}

type InsertOperation interface {
	Operation
	AddLine(line string)
	Close()
	Length() int
}

// Storage reads and writes whole files as sequences of lines.
// Each line keeps its terminator.
type Storage interface {
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetLastError() error
}
